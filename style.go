package pathcalc

import (
	"fmt"
	"runtime"
	"strings"
)

// Style selects the separator and root conventions used to parse and
// render paths. Both styles are usable on every platform.
type Style int

const (
	// Posix paths use '/' and a single '/' root.
	Posix Style = iota
	// Windows paths accept '\' and '/', render '\', and may start with a
	// drive letter (C:) or a UNC share (\\server\share).
	Windows
)

// Native returns the style of the running operating system.
func Native() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// ParseStyle parses a style name. The empty string and "native" select
// Native().
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return Native(), nil
	case "posix", "unix":
		return Posix, nil
	case "windows":
		return Windows, nil
	default:
		return 0, fmt.Errorf("%w %q, must be one of: posix, windows, native", ErrUnknownStyle, name)
	}
}

// String returns the lowercase name of the style.
func (s Style) String() string {
	switch s {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Separator returns the separator the style emits.
func (s Style) Separator() byte {
	if s == Windows {
		return '\\'
	}
	return '/'
}

func (s Style) isSeparator(c byte) bool {
	return c == '/' || (s == Windows && c == '\\')
}

// volumeLen returns the length of the leading drive or UNC volume in path.
func (s Style) volumeLen(path string) int {
	if s != Windows {
		return 0
	}
	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return 2
	}
	// \\server\share
	l := len(path)
	if l < 5 || !s.isSeparator(path[0]) || !s.isSeparator(path[1]) || s.isSeparator(path[2]) || path[2] == '.' {
		return 0
	}
	for n := 3; n < l-1; n++ {
		if !s.isSeparator(path[n]) {
			continue
		}
		n++
		if s.isSeparator(path[n]) || path[n] == '.' {
			return 0
		}
		for ; n < l; n++ {
			if s.isSeparator(path[n]) {
				break
			}
		}
		return n
	}
	return 0
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Parse splits path into segments. Empty names produced by repeated
// separators are dropped, and "." survives only as the leading segment of
// a relative path.
func (s Style) Parse(path string) Path {
	var segs []Segment

	if n := s.volumeLen(path); n > 0 {
		segs = append(segs, Segment{Kind: Prefix, Name: s.normalize(path[:n])})
		path = path[n:]
	}
	if len(path) > 0 && s.isSeparator(path[0]) {
		segs = append(segs, s.rootDir())
	}

	names := strings.FieldsFunc(path, func(r rune) bool {
		return r < 0x80 && s.isSeparator(byte(r))
	})
	for _, name := range names {
		switch name {
		case ".":
			if len(segs) == 0 {
				segs = append(segs, Segment{Kind: CurDir})
			}
		case "..":
			segs = append(segs, Segment{Kind: ParentDir})
		default:
			segs = append(segs, Segment{Kind: Normal, Name: name})
		}
	}

	return Path{style: s, segs: segs}
}

func (s Style) rootDir() Segment {
	return Segment{Kind: RootDir, Name: string(s.Separator())}
}

// normalize rewrites every accepted separator in a volume name to the one
// the style emits, so //srv/share and \\srv\share compare equal.
func (s Style) normalize(vol string) string {
	if s != Windows {
		return vol
	}
	return strings.ReplaceAll(vol, "/", `\`)
}
