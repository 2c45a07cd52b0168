package pathcalc

import (
	"slices"
	"strings"
)

// Kind classifies a path segment.
type Kind int

const (
	// Normal is an ordinary name, including a literal "~".
	Normal Kind = iota
	// Prefix is a Windows volume such as "C:" or `\\server\share`.
	Prefix
	// RootDir is the root separator.
	RootDir
	// CurDir is ".".
	CurDir
	// ParentDir is "..".
	ParentDir
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Prefix:
		return "prefix"
	case RootDir:
		return "root"
	case CurDir:
		return "cur"
	case ParentDir:
		return "parent"
	default:
		return "unknown"
	}
}

// Segment is one component of a Path. Segments are compared by exact
// equality of Kind and Name.
type Segment struct {
	Kind Kind
	Name string
}

// String returns the text the segment contributes to a rendered path.
func (s Segment) String() string {
	switch s.Kind {
	case CurDir:
		return "."
	case ParentDir:
		return ".."
	default:
		return s.Name
	}
}

var parentDir = Segment{Kind: ParentDir}

// Path is an immutable, ordered sequence of segments in a given Style.
// The zero value is an empty Posix path.
type Path struct {
	style Style
	segs  []Segment
}

// Style returns the style the path was built with.
func (p Path) Style() Style {
	return p.style
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	return slices.Clone(p.segs)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// IsAbs reports whether the path starts at a filesystem root. On Windows a
// drive prefix must be followed by a root; UNC shares are always absolute.
func (p Path) IsAbs() bool {
	if len(p.segs) == 0 {
		return false
	}
	first := p.segs[0]
	if p.style != Windows {
		return first.Kind == RootDir
	}
	if first.Kind != Prefix {
		return false
	}
	if strings.HasPrefix(first.Name, `\\`) {
		return true
	}
	return len(p.segs) > 1 && p.segs[1].Kind == RootDir
}

// anchorLen returns the number of leading prefix and root segments.
func (p Path) anchorLen() int {
	n := 0
	for n < len(p.segs) && (p.segs[n].Kind == Prefix || p.segs[n].Kind == RootDir) {
		n++
	}
	return n
}

// Equal reports whether p and q have the same style and segments.
func (p Path) Equal(q Path) bool {
	return p.style == q.style && slices.Equal(p.segs, q.segs)
}

// HasPrefix reports whether q's segments are a leading run of p's.
func (p Path) HasPrefix(q Path) bool {
	if p.style != q.style || len(q.segs) > len(p.segs) {
		return false
	}
	return slices.Equal(p.segs[:len(q.segs)], q.segs)
}

// String joins the segments with the style's separator. An empty path
// renders as ".".
func (p Path) String() string {
	if len(p.segs) == 0 {
		return "."
	}

	sep := p.style.Separator()
	var b strings.Builder
	needSep := false
	for _, seg := range p.segs {
		switch seg.Kind {
		case Prefix:
			b.WriteString(seg.Name)
			needSep = strings.HasPrefix(seg.Name, `\\`)
		case RootDir:
			b.WriteByte(sep)
			needSep = false
		default:
			if needSep {
				b.WriteByte(sep)
			}
			b.WriteString(seg.String())
			needSep = true
		}
	}
	return b.String()
}

// newPath copies segs into a fresh Path.
func newPath(style Style, segs ...[]Segment) Path {
	return Path{style: style, segs: slices.Concat(segs...)}
}
