package envscan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.example")
	content := "# comment\n\n   # indented comment\nKEY=value\nKEY2=a=b\n  SPACED  =  padded  \nMALFORMED\nEMPTY=\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := ParseExample(path)
	want := map[string]string{
		"KEY":    "value",
		"KEY2":   "a=b",
		"SPACED": "padded",
		"EMPTY":  "",
	}
	if len(got) != len(want) {
		t.Fatalf("ParseExample() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestParseExample_MissingFile(t *testing.T) {
	got := ParseExample(filepath.Join(t.TempDir(), "missing.env.example"))
	if got == nil || len(got) != 0 {
		t.Errorf("ParseExample(missing) = %v, want empty map", got)
	}
}

func TestParseExample_LongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.example")
	big := strings.Repeat("x", 256*1024)
	if err := os.WriteFile(path, []byte("A=1\nBIG="+big+"\nAFTER=2"), 0644); err != nil {
		t.Fatal(err)
	}

	got := ParseExample(path)
	if len(got) != 3 {
		t.Fatalf("got %d keys, want 3", len(got))
	}
	if got["A"] != "1" || got["BIG"] != big || got["AFTER"] != "2" {
		t.Errorf("A=%q len(BIG)=%d AFTER=%q", got["A"], len(got["BIG"]), got["AFTER"])
	}
}

func TestParseExample_Directory(t *testing.T) {
	got := ParseExample(t.TempDir())
	if got == nil || len(got) != 0 {
		t.Errorf("ParseExample(dir) = %v, want empty map", got)
	}
}
