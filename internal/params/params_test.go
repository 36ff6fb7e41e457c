package params

import (
	"reflect"
	"strings"
	"testing"
)

func parseLine(line string) *Store {
	return Parse(strings.Fields(line))
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		args string
		name string
		def  bool
		want bool
	}{
		{"-ETC", "-ETC", false, true},
		{"-ETC", "-ETC", true, true},
		{"-ETC", "-fo", false, false},
		{"-ETC", "-fo", true, true},
		{"-ETC", "-ETCo", false, false},
		{"-ETC", "-ETCo", true, true},
		{"-ETC=0", "-ETC", false, false},
		{"-ETC=0", "-ETC", true, false},
		{"-ETC=1", "-ETC", false, true},
		{"-ETC=1", "-ETC", true, true},
		{"-noETC", "-ETC", false, false},
		{"-noETC", "-ETC", true, false},
		{"-noETC=1", "-ETC", false, false},
		{"-noETC=1", "-ETC", true, false},
		{"-noETC=0", "-ETC", false, true},
		{"-noETC=0", "-ETC", true, true},
		{"-ETC -noETC", "-ETC", false, true},
		{"-noETC -ETC", "-ETC", false, true},
		{"-ETC=1 -noETC=1", "-ETC", false, true},
		{"-ETC=1 -noETC=1", "-ETC", true, true},
		{"-ETC=0 -noETC=0", "-ETC", false, false},
		{"-ETC=0 -noETC=0", "-ETC", true, false},
		{"--ETC=1", "-ETC", false, true},
		{"--noETC=1", "-ETC", true, false},
		{"-ETC --noETC", "-ETC", false, true},
		{"--ETC", "-ETC", false, true},
		{"-ETC=", "-ETC", false, true},
		{"-ETC=yes", "-ETC", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.args+"/"+tt.name, func(t *testing.T) {
			got := parseLine(tt.args).GetBool(tt.name, tt.def)
			if got != tt.want {
				t.Fatalf("GetBool(%q, %v) with %q = %v, want %v", tt.name, tt.def, tt.args, got, tt.want)
			}
		})
	}
}

func TestGetBool_DefaultWhenAbsent(t *testing.T) {
	s := parseLine("-other -noanother=1")
	for _, name := range []string{"-X", "-testnet", "-splash"} {
		for _, def := range []bool{true, false} {
			if got := s.GetBool(name, def); got != def {
				t.Fatalf("GetBool(%q, %v) = %v, want default", name, def, got)
			}
		}
	}
}

func TestGetString(t *testing.T) {
	tests := []struct {
		args string
		def  string
		want string
	}{
		{"", "", ""},
		{"", "eleven", "eleven"},
		{"-ETC -bar", "", ""},
		{"-ETC -bar", "eleven", ""},
		{"-ETC=", "", ""},
		{"-ETC=", "eleven", ""},
		{"-ETC=11", "", "11"},
		{"-ETC=11", "eleven", "11"},
		{"-ETC=eleven", "", "eleven"},
		{"-ETC=eleven", "eleven", "eleven"},
		{"--ETC=verbose --bar=1", "", "verbose"},
		{"-ETC=a=b", "", "a=b"},
		{"-ETC=first -ETC=second", "", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			got := parseLine(tt.args).GetString("-ETC", tt.def)
			if got != tt.want {
				t.Fatalf("GetString(-ETC, %q) with %q = %q, want %q", tt.def, tt.args, got, tt.want)
			}
		})
	}
}

func TestFlagFormReadsEmptyStringAndTrueBool(t *testing.T) {
	for _, args := range []string{"-X", "-X="} {
		s := parseLine(args)
		if got := s.GetString("-X", "d"); got != "" {
			t.Fatalf("GetString with %q = %q, want empty", args, got)
		}
		if !s.GetBool("-X", false) {
			t.Fatalf("GetBool with %q = false, want true", args)
		}
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		args string
		name string
		def  int64
		want int64
	}{
		{"", "-ETC", 11, 11},
		{"", "-ETC", 0, 0},
		{"-ETC -bar", "-ETC", 11, 0},
		{"-ETC -bar", "-bar", 11, 0},
		{"-ETC=11 -bar=12", "-ETC", 0, 11},
		{"-ETC=11 -bar=12", "-bar", 11, 12},
		{"-ETC=NaN -bar=NotANumber", "-ETC", 1, 0},
		{"-ETC=NaN -bar=NotANumber", "-bar", 11, 0},
		{"-ETC=abc", "-ETC", 5, 0},
		{"-ETC=99999999999999999999", "-ETC", 5, 0},
		{"-ETC=-42", "-ETC", 5, -42},
		{"--ETC=verbose --bar=1", "-bar", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.args+"/"+tt.name, func(t *testing.T) {
			got := parseLine(tt.args).GetInt(tt.name, tt.def)
			if got != tt.want {
				t.Fatalf("GetInt(%q, %d) with %q = %d, want %d", tt.name, tt.def, tt.args, got, tt.want)
			}
		})
	}
}

func TestGetStringList_KeepsArgumentOrder(t *testing.T) {
	s := parseLine("-addnode=a -testnet -addnode=b --addnode=c")

	want := []string{"a", "b", "c"}
	if got := s.GetStringList("-addnode"); !reflect.DeepEqual(got, want) {
		t.Fatalf("GetStringList = %#v, want %#v", got, want)
	}
	if got := s.GetString("-addnode", ""); got != "a" {
		t.Fatalf("GetString = %q, want first value %q", got, "a")
	}
	if got := s.GetStringList("-missing"); len(got) != 0 {
		t.Fatalf("GetStringList(-missing) = %#v, want empty", got)
	}
}

func TestParse_NonOptionsArePositional(t *testing.T) {
	s := Parse([]string{"eternalcoin:abc", "-", "--", "-=x", "plain", "-min"})

	want := []string{"eternalcoin:abc", "-", "--", "-=x", "plain"}
	if got := s.Positional(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Positional = %#v, want %#v", got, want)
	}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"-min"}) {
		t.Fatalf("Names = %#v, want only -min", got)
	}
}

func TestParse_ReplacesPreviousContents(t *testing.T) {
	var s Store
	s.Parse([]string{"-a=1", "uri"})
	s.Parse([]string{"-b=2"})

	if s.Has("-a") {
		t.Fatal("Has(-a) = true after re-parse, want false")
	}
	if got := s.GetInt("-b", 0); got != 2 {
		t.Fatalf("GetInt(-b) = %d, want 2", got)
	}
	if len(s.Positional()) != 0 {
		t.Fatalf("Positional = %#v, want empty after re-parse", s.Positional())
	}
}

func TestParse_Idempotent(t *testing.T) {
	args := []string{"-X", "-noY", "-Z=7", "-W=a", "-W=b", "--V=0"}
	first := Parse(args)
	second := Parse(args)
	second.Parse(args)

	for _, name := range []string{"-X", "-Y", "-Z", "-W", "-V", "-missing"} {
		if first.GetBool(name, true) != second.GetBool(name, true) {
			t.Fatalf("GetBool(%q) differs across parses", name)
		}
		if first.GetString(name, "d") != second.GetString(name, "d") {
			t.Fatalf("GetString(%q) differs across parses", name)
		}
		if first.GetInt(name, 3) != second.GetInt(name, 3) {
			t.Fatalf("GetInt(%q) differs across parses", name)
		}
		if !reflect.DeepEqual(first.GetStringList(name), second.GetStringList(name)) {
			t.Fatalf("GetStringList(%q) differs across parses", name)
		}
	}
}

func TestMerge_CommandLineWins(t *testing.T) {
	s := parseLine("-rpcport=1000 -noupnp")
	s.Merge(map[string][]string{
		"rpcport":  {"2000"},
		"-rpcuser": {"alice"},
		"addnode":  {"a", "b"},
		"upnp":     {"1"},
		"empty":    nil,
	})

	if got := s.GetInt("-rpcport", 0); got != 1000 {
		t.Fatalf("GetInt(-rpcport) = %d, want command line 1000", got)
	}
	if got := s.GetString("-rpcuser", ""); got != "alice" {
		t.Fatalf("GetString(-rpcuser) = %q, want alice", got)
	}
	if got := s.GetStringList("-addnode"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("GetStringList(-addnode) = %#v", got)
	}
	if s.GetBool("-upnp", true) {
		t.Fatal("GetBool(-upnp) = true, want command-line -noupnp to hold")
	}
	if s.Has("-empty") {
		t.Fatal("Has(-empty) = true, want false for empty value list")
	}
}

func TestMerge_NegationOnEitherSide(t *testing.T) {
	tests := []struct {
		line   string
		config map[string][]string
		name   string
		want   bool
	}{
		{"-notestnet", map[string][]string{"testnet": {"1"}}, "-testnet", false},
		{"-testnet", map[string][]string{"notestnet": {"1"}}, "-testnet", true},
		{"-testnet=0", map[string][]string{"notestnet": {"0"}}, "-testnet", false},
		{"", map[string][]string{"notestnet": {"1"}}, "-testnet", false},
		{"-noupnp", map[string][]string{"testnet": {"1"}}, "-testnet", true},
	}
	for _, tt := range tests {
		s := parseLine(tt.line)
		s.Merge(tt.config)
		if got := s.GetBool(tt.name, true); got != tt.want {
			t.Fatalf("line %q config %v: GetBool(%s) = %v, want %v", tt.line, tt.config, tt.name, got, tt.want)
		}
	}
}

func TestZeroStoreLookups(t *testing.T) {
	var s *Store
	if s.Has("-x") || s.GetString("-x", "d") != "d" || s.GetInt("-x", 4) != 4 || !s.GetBool("-x", true) {
		t.Fatal("nil store should return defaults")
	}
}
