package params

import (
	"sort"
	"strconv"
	"strings"
)

type entry struct {
	value string
	bare  bool // written as -name with no '='
}

// Store holds the parsed command-line options. The zero value is an empty
// store; Parse replaces its contents.
type Store struct {
	entries    map[string][]entry
	positional []string
}

// Parse builds a new store from tokens (program name excluded).
func Parse(tokens []string) *Store {
	s := &Store{}
	s.Parse(tokens)
	return s
}

// Parse replaces the store's contents with the options found in tokens.
// Tokens that are not options are kept aside and returned by Positional.
func (s *Store) Parse(tokens []string) {
	s.entries = make(map[string][]entry)
	s.positional = nil

	for _, token := range tokens {
		name, value, bare, ok := splitOption(token)
		if !ok {
			s.positional = append(s.positional, token)
			continue
		}
		s.entries[name] = append(s.entries[name], entry{value: value, bare: bare})
	}
}

// splitOption normalizes a leading "--" to "-" and splits at the first '='.
func splitOption(token string) (name, value string, bare, ok bool) {
	if strings.HasPrefix(token, "--") {
		token = token[1:]
	}
	if !strings.HasPrefix(token, "-") {
		return "", "", false, false
	}
	name, value, hasValue := strings.Cut(token, "=")
	if len(name) < 2 {
		return "", "", false, false
	}
	return name, value, !hasValue, true
}

// Merge adds values for names the command line did not set. A name is also
// skipped when the command line holds its negation, so -noX on the command
// line beats X from a config file and -X beats noX.
func (s *Store) Merge(values map[string][]string) {
	if s.entries == nil {
		s.entries = make(map[string][]entry)
	}
	cli := make(map[string]bool, len(s.entries))
	for name := range s.entries {
		cli[name] = true
	}
	for name, vals := range values {
		if !strings.HasPrefix(name, "-") {
			name = "-" + name
		}
		if len(vals) == 0 || cli[name] || cli[negated(name)] {
			continue
		}
		if base, ok := strings.CutPrefix(name, "-no"); ok && base != "" && cli["-"+base] {
			continue
		}
		list := make([]entry, 0, len(vals))
		for _, v := range vals {
			list = append(list, entry{value: v})
		}
		s.entries[name] = list
	}
}

// Has reports whether name appeared in any form.
func (s *Store) Has(name string) bool {
	_, ok := s.first(name)
	return ok
}

// GetString returns the first value recorded for name, or def when absent.
// A bare "-name" yields the empty string.
func (s *Store) GetString(name, def string) string {
	e, ok := s.first(name)
	if !ok {
		return def
	}
	return e.value
}

// GetStringList returns every value recorded for name in argument order.
func (s *Store) GetStringList(name string) []string {
	if s == nil {
		return nil
	}
	list := s.entries[name]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.value
	}
	return out
}

// GetInt parses the first value for name as a base-10 integer. An absent name
// yields def; a present but unparsable value yields 0, not def.
func (s *Store) GetInt(name string, def int64) int64 {
	e, ok := s.first(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// GetBool resolves a boolean option. An explicit -X always beats -noX, and
// -noX beats def. A bare -X is true, as is -noX=0.
func (s *Store) GetBool(name string, def bool) bool {
	if e, ok := s.first(name); ok {
		return truthy(e)
	}
	if e, ok := s.first(negated(name)); ok {
		return !truthy(e)
	}
	return def
}

// Positional returns the tokens that were not options, in order.
func (s *Store) Positional() []string {
	if s == nil || len(s.positional) == 0 {
		return nil
	}
	out := make([]string, len(s.positional))
	copy(out, s.positional)
	return out
}

// Names lists the recorded option names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) first(name string) (entry, bool) {
	if s == nil {
		return entry{}, false
	}
	list := s.entries[name]
	if len(list) == 0 {
		return entry{}, false
	}
	return list[0], true
}

func negated(name string) string {
	return "-no" + strings.TrimPrefix(name, "-")
}

func truthy(e entry) bool {
	if e.bare || e.value == "" {
		return true
	}
	if n, err := strconv.ParseInt(e.value, 10, 64); err == nil {
		return n != 0
	}
	return true
}
