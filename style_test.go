package pathcalc

import (
	"errors"
	"runtime"
	"slices"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{"posix", Posix, false},
		{"POSIX", Posix, false},
		{"unix", Posix, false},
		{"windows", Windows, false},
		{"Windows", Windows, false},
		{"native", Native(), false},
		{"", Native(), false},
		{"plan9", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStyle) {
					t.Errorf("ParseStyle(%q) error = %v, want ErrUnknownStyle", tt.input, err)
				}
				if errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseStyle(%q) error = %v, must not match ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNative(t *testing.T) {
	want := Posix
	if runtime.GOOS == "windows" {
		want = Windows
	}
	if got := Native(); got != want {
		t.Errorf("Native() = %v, want %v", got, want)
	}
}

func TestStyle_Parse(t *testing.T) {
	root := Segment{Kind: RootDir, Name: "/"}
	winRoot := Segment{Kind: RootDir, Name: `\`}
	name := func(s string) Segment { return Segment{Kind: Normal, Name: s} }

	tests := []struct {
		name  string
		style Style
		input string
		want  []Segment
	}{
		{"posix absolute", Posix, "/home/cc", []Segment{root, name("home"), name("cc")}},
		{"posix repeated separators", Posix, "//home///cc/", []Segment{root, name("home"), name("cc")}},
		{"posix relative", Posix, "a/b", []Segment{name("a"), name("b")}},
		{"posix leading dot kept", Posix, "./a", []Segment{{Kind: CurDir}, name("a")}},
		{"posix inner dot dropped", Posix, "a/./b", []Segment{name("a"), name("b")}},
		{"posix parent", Posix, "../a", []Segment{parentDir, name("a")}},
		{"posix backslash is a name", Posix, `a\b`, []Segment{name(`a\b`)}},
		{"posix colon is a name", Posix, "C:/x", []Segment{name("C:"), name("x")}},
		{"posix tilde", Posix, "~/x", []Segment{name("~"), name("x")}},
		{"posix empty", Posix, "", nil},
		{"windows drive", Windows, `C:\Users\x`, []Segment{{Kind: Prefix, Name: "C:"}, winRoot, name("Users"), name("x")}},
		{"windows mixed separators", Windows, `C:/Users\x`, []Segment{{Kind: Prefix, Name: "C:"}, winRoot, name("Users"), name("x")}},
		{"windows drive relative", Windows, `C:x`, []Segment{{Kind: Prefix, Name: "C:"}, name("x")}},
		{"windows rooted", Windows, `\x`, []Segment{winRoot, name("x")}},
		{"windows unc", Windows, `\\srv\share\x`, []Segment{{Kind: Prefix, Name: `\\srv\share`}, winRoot, name("x")}},
		{"windows unc forward slashes", Windows, `//srv/share/x`, []Segment{{Kind: Prefix, Name: `\\srv\share`}, winRoot, name("x")}},
		{"windows unc without share", Windows, `\\srv`, []Segment{winRoot, name("srv")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.Parse(tt.input).Segments()
			if !slices.Equal(got, tt.want) {
				t.Errorf("%v.Parse(%q) = %v, want %v", tt.style, tt.input, got, tt.want)
			}
		})
	}
}

func TestPath_String_RoundTrip(t *testing.T) {
	tests := []struct {
		style Style
		input string
	}{
		{Posix, "/"},
		{Posix, "/home/cc/work"},
		{Posix, "a/b"},
		{Posix, "./a"},
		{Posix, "../../a"},
		{Windows, `C:\`},
		{Windows, `C:\Users\x`},
		{Windows, `C:x`},
		{Windows, `\x`},
		{Windows, `\\srv\share\x`},
		{Windows, `..\x`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := tt.style.Parse(tt.input)
			if got := p.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			if again := tt.style.Parse(p.String()); !again.Equal(p) {
				t.Errorf("Parse(String()) = %v, want %v", again.Segments(), p.Segments())
			}
		})
	}
}

func TestPath_IsAbs(t *testing.T) {
	tests := []struct {
		style Style
		input string
		want  bool
	}{
		{Posix, "/", true},
		{Posix, "/a", true},
		{Posix, "a", false},
		{Posix, "", false},
		{Posix, "~", false},
		{Windows, `C:\`, true},
		{Windows, `C:\a`, true},
		{Windows, `C:a`, false},
		{Windows, `\a`, false},
		{Windows, `\\srv\share`, true},
		{Windows, `a`, false},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+" "+tt.input, func(t *testing.T) {
			if got := tt.style.Parse(tt.input).IsAbs(); got != tt.want {
				t.Errorf("IsAbs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPath_HasPrefix(t *testing.T) {
	p := Posix.Parse("/a/b/c")

	tests := []struct {
		prefix Path
		want   bool
	}{
		{Posix.Parse("/"), true},
		{Posix.Parse("/a/b"), true},
		{Posix.Parse("/a/b/c"), true},
		{Posix.Parse("/a/bc"), false},
		{Posix.Parse("/a/b/c/d"), false},
		{Posix.Parse("a"), false},
		{Windows.Parse("/a"), false},
		{Path{}, true},
	}

	for _, tt := range tests {
		if got := p.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestPath_SegmentsIsCopy(t *testing.T) {
	p := Posix.Parse("/a/b")
	segs := p.Segments()
	segs[1].Name = "changed"
	if p.String() != "/a/b" {
		t.Errorf("mutating Segments() changed path to %q", p)
	}
}

func TestPath_Empty(t *testing.T) {
	var p Path
	if !p.IsEmpty() {
		t.Error("zero Path should be empty")
	}
	if p.String() != "." {
		t.Errorf("String() = %q, want %q", p.String(), ".")
	}
}
