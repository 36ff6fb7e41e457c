package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/eternalcoin/eternalcoin/internal/params"
)

func TestDataDir_DefaultIsCreatedUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := DataDir(params.Parse(nil))
	if err != nil {
		t.Fatalf("DataDir returned error: %v", err)
	}
	if want := filepath.Join(home, ".eternalcoin"); dir != want {
		t.Fatalf("DataDir = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("DataDir did not create %q: %v", dir, err)
	}
}

func TestDataDir_ExplicitMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := DataDir(params.Parse([]string{"-datadir=" + missing}))
	if !errors.Is(err, ErrDataDirMissing) {
		t.Fatalf("DataDir error = %v, want ErrDataDirMissing", err)
	}
	if _, statErr := os.Stat(missing); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("explicit data directory should not be created")
	}
}

func TestDataDir_ExplicitFileIsRejected(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := DataDir(params.Parse([]string{"-datadir=" + file})); !errors.Is(err, ErrDataDirMissing) {
		t.Fatalf("DataDir error = %v, want ErrDataDirMissing", err)
	}
}

func TestDataDir_Testnet(t *testing.T) {
	base := t.TempDir()
	dir, err := DataDir(params.Parse([]string{"--datadir=" + base, "-testnet"}))
	if err != nil {
		t.Fatalf("DataDir returned error: %v", err)
	}
	if want := filepath.Join(base, "testnet"); dir != want {
		t.Fatalf("DataDir = %q, want %q", dir, want)
	}
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		args []string
		want string
	}{
		{nil, "/data/eternalcoin.toml"},
		{[]string{"-conf=other.toml"}, "/data/other.toml"},
		{[]string{"-conf=/etc/ec.toml"}, "/etc/ec.toml"},
		{[]string{"-conf=~/ec.toml"}, filepath.Join(home, "ec.toml")},
		{[]string{"-conf"}, "/data/eternalcoin.toml"},
	}
	for _, tt := range tests {
		if got := Path(params.Parse(tt.args), "/data"); got != tt.want {
			t.Fatalf("Path(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	values, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("Load = %#v, want empty", values)
	}
}

func TestLoad_FlattensValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eternalcoin.toml")
	if err := os.WriteFile(path, []byte(`
rpcuser = "alice"
rpcport = 9347
splash = false
testnet = true
paytxfee = 0.01
addnode = ["a", "b"]
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	values, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := map[string][]string{
		"rpcuser":  {"alice"},
		"rpcport":  {"9347"},
		"splash":   {"0"},
		"testnet":  {"1"},
		"paytxfee": {"0.01"},
		"addnode":  {"a", "b"},
	}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("Load = %#v, want %#v", values, want)
	}
}

func TestLoad_MergedUnderCommandLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eternalcoin.toml")
	if err := os.WriteFile(path, []byte("rpcport = 1\nrpcuser = \"bob\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	values, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	store := params.Parse([]string{"-rpcport=2"})
	store.Merge(values)
	if got := store.GetInt("-rpcport", 0); got != 2 {
		t.Fatalf("rpcport = %d, want command line 2", got)
	}
	if got := store.GetString("-rpcuser", ""); got != "bob" {
		t.Fatalf("rpcuser = %q, want bob from config", got)
	}
}

func TestLoad_RejectsTablesAndInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"table.toml":   "[rpc]\nport = 1\n",
		"invalid.toml": "rpcport = [",
	}
	for name, body := range tests {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		_, err := Load(path)
		if err == nil {
			t.Fatalf("Load(%s) returned nil error", name)
		}
		if !strings.Contains(err.Error(), "parse config") {
			t.Fatalf("Load(%s) error = %q, want it to mention parse config", name, err.Error())
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
