package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/eternalcoin/eternalcoin/internal/params"
)

const (
	defaultDataDir  = "~/.eternalcoin"
	defaultConfFile = "eternalcoin.toml"
	testnetSubdir   = "testnet"
)

// ErrDataDirMissing is returned when an explicit -datadir does not exist.
var ErrDataDirMissing = errors.New("specified data directory does not exist")

// DataDir resolves the data directory from -datadir, falling back to
// ~/.eternalcoin. An explicit directory must already exist; the default one
// is created. With -testnet the testnet subdirectory is used and created.
func DataDir(store *params.Store) (string, error) {
	explicit := strings.TrimSpace(store.GetString("-datadir", ""))
	dir := explicit
	if dir == "" {
		dir = defaultDataDir
	}
	resolved, err := expandPath(dir)
	if err != nil {
		return "", err
	}

	if explicit != "" {
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: %q", ErrDataDirMissing, explicit)
		}
	} else if err := os.MkdirAll(resolved, 0o700); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}

	if store.GetBool("-testnet", false) {
		resolved = filepath.Join(resolved, testnetSubdir)
		if err := os.MkdirAll(resolved, 0o700); err != nil {
			return "", fmt.Errorf("create testnet directory: %w", err)
		}
	}
	return resolved, nil
}

// Path returns the config file location: -conf when given, resolved against
// dataDir when relative, otherwise <dataDir>/eternalcoin.toml.
func Path(store *params.Store, dataDir string) string {
	name := strings.TrimSpace(store.GetString("-conf", defaultConfFile))
	if name == "" {
		name = defaultConfFile
	}
	if strings.HasPrefix(name, "~") {
		return mustExpand(name)
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}

// Load reads a TOML config file into option values keyed by option name
// without the leading dash. A missing file yields no values.
func Load(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string][]string, len(raw))
	for _, key := range keys {
		list, err := flatten(raw[key])
		if err != nil {
			return nil, fmt.Errorf("parse config: key %q: %w", key, err)
		}
		values[strings.TrimPrefix(key, "-")] = list
	}
	return values, nil
}

func flatten(value any) ([]string, error) {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := scalar(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		s, err := scalar(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func scalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", value)
	}
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
