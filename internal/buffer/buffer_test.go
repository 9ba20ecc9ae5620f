package buffer

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

func lineStrings(b *Buffer) []string {
	out := make([]string, b.LineCount())
	for i := range out {
		l, _ := b.Line(i)
		out[i] = l.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoadSplitsLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"\n", []string{"\n"}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc\n"}},
		{"ab\ncd\n\n", []string{"ab\n", "cd\n", "\n"}},
		{"ab\ncd", []string{"ab\n", "cd"}},
		{"\n\n\nx", []string{"\n", "\n", "\n", "x"}},
		{"crlf\r\nkept\r\n", []string{"crlf\r\n", "kept\r\n"}},
	}
	for _, tc := range cases {
		b, err := Load(strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("Load(%q): %v", tc.in, err)
		}
		got := lineStrings(b)
		if !equalStrings(got, tc.want) {
			t.Errorf("Load(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if err := b.Validate(); err != nil {
			t.Errorf("Load(%q): %v", tc.in, err)
		}
	}
}

func TestLoadThreeLineScenarioLengths(t *testing.T) {
	b, err := Load(strings.NewReader("ab\ncd\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 3, 1}
	if b.LineCount() != len(want) {
		t.Fatalf("LineCount = %d, want %d", b.LineCount(), len(want))
	}
	for i, n := range want {
		if got := b.lineLen(i); got != n {
			t.Errorf("lineLen(%d) = %d, want %d", i, got, n)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, syscall.EIO }

func TestLoadReadError(t *testing.T) {
	b, err := Load(failingReader{})
	if err == nil {
		t.Fatal("expected error")
	}
	if b != nil {
		t.Fatal("expected no buffer on read error")
	}
	if !errors.Is(err, syscall.EIO) {
		t.Errorf("error %v does not wrap EIO", err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"no trailing newline",
		"one\ntwo\nthree\n",
		"\t\tindented\n  spaces  \n\n\n",
		"binary\x00bytes\xff\xfe\n\x80",
		"ab\ncd\n\n",
	}
	for _, in := range inputs {
		b, err := Load(strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		n, err := b.WriteTo(&out)
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != in {
			t.Errorf("round trip of %q produced %q", in, out.String())
		}
		if n != int64(len(in)) {
			t.Errorf("WriteTo(%q) n = %d, want %d", in, n, len(in))
		}
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	content := "first\nsecond\nno newline"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile(path, 0)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	b.Insert(Position{Col: 0, Row: 0}, '>')
	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != ">"+content {
		t.Errorf("saved %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode changed to %v", info.Mode().Perm())
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing"), 0); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
	if _, err := LoadFile(dir, 0); !errors.Is(err, syscall.EISDIR) {
		t.Errorf("directory: got %v", err)
	}

	big := filepath.Join(dir, "big")
	if err := os.WriteFile(big, bytes.Repeat([]byte("x"), 64), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(big, 32); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversize: got %v", err)
	}
	if _, err := LoadFile(big, 64); err != nil {
		t.Errorf("at limit: %v", err)
	}
}

func TestSaveFailureLeavesBuffer(t *testing.T) {
	b := FromString("keep\nme\n")
	before := b.clone()
	err := b.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !b.Equal(before) {
		t.Error("buffer changed after failed save")
	}
}

func TestValidate(t *testing.T) {
	b := &Buffer{lines: []*Line{newLine([]byte("a")), newLine([]byte("b"))}}
	if err := b.Validate(); err == nil {
		t.Error("expected unterminated inner line to fail")
	}
	b = &Buffer{lines: []*Line{newLine([]byte("a\nb\n"))}}
	if err := b.Validate(); err == nil {
		t.Error("expected embedded newline to fail")
	}
	if err := (&Buffer{}).Validate(); err == nil {
		t.Error("expected empty buffer to fail")
	}
	if err := New().Validate(); err != nil {
		t.Errorf("New: %v", err)
	}
}

func (b *Buffer) lineLen(row int) int {
	l, ok := b.Line(row)
	if !ok {
		return -1
	}
	return l.Len()
}

func (b *Buffer) clone() *Buffer {
	c := &Buffer{lines: make([]*Line, len(b.lines))}
	for i, l := range b.lines {
		c.lines[i] = newLine(l.data)
	}
	return c
}
