package pathcalc

import "fmt"

// HomeMarker is the leading segment that Abs expands to the home directory.
const HomeMarker = "~"

// Calculator performs path arithmetic in one Style. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	style Style
	home  HomeFunc
	abs   Absolutizer
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithStyle sets the path style. Defaults to Native().
func WithStyle(s Style) Option {
	return func(c *Calculator) {
		c.style = s
	}
}

// WithHome sets the home directory provider. Defaults to EnvHome.
func WithHome(fn HomeFunc) Option {
	return func(c *Calculator) {
		c.home = fn
	}
}

// WithWorkDir resolves relative paths lexically against fn.
func WithWorkDir(fn WorkDirFunc) Option {
	return func(c *Calculator) {
		c.abs = LexicalAbsolutizer{WorkDir: fn}
	}
}

// WithAbsolutizer replaces the absolutizer used for paths that do not start
// with the home marker.
func WithAbsolutizer(a Absolutizer) Option {
	return func(c *Calculator) {
		c.abs = a
	}
}

// New creates a Calculator. Without options it uses the native style, the
// environment's home directory and the process working directory.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		style: Native(),
		home:  EnvHome,
		abs:   LexicalAbsolutizer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Style returns the calculator's path style.
func (c *Calculator) Style() Style {
	return c.style
}

// Parse splits path using the calculator's style.
func (c *Calculator) Parse(path string) Path {
	return c.style.Parse(path)
}

// HomeDir returns the current user's home directory. It fails with
// ErrInvalidInput when no home is configured, including an empty value.
func (c *Calculator) HomeDir() (Path, error) {
	dir, err := c.home()
	if err != nil {
		return Path{}, fmt.Errorf("home directory is not set: %w: %w", ErrInvalidInput, err)
	}
	if dir == "" {
		return Path{}, fmt.Errorf("home directory is not set: %w", ErrInvalidInput)
	}
	home := c.style.Parse(dir)
	if !home.IsAbs() {
		return Path{}, fmt.Errorf("home directory %q is not absolute: %w", dir, ErrInvalidInput)
	}
	return home, nil
}

// Abs returns the absolute form of path. A leading "~" segment is replaced
// by the home directory and the remaining segments are appended as given;
// every other path goes to the absolutizer unchanged. "~user" and a "~"
// anywhere but first are ordinary names.
func (c *Calculator) Abs(path string) (Path, error) {
	return c.absPath(c.style.Parse(path))
}

func (c *Calculator) absPath(p Path) (Path, error) {
	if p.IsEmpty() || p.segs[0] != (Segment{Kind: Normal, Name: HomeMarker}) {
		abs, err := c.abs.Absolutize(p)
		if err != nil {
			return Path{}, fmt.Errorf("absolutize %q: %w", p, err)
		}
		return abs, nil
	}

	home, err := c.HomeDir()
	if err != nil {
		return Path{}, fmt.Errorf("expand %q: %w", p, err)
	}
	return newPath(c.style, home.segs, p.segs[1:]), nil
}

// RelativeRoot returns the deepest common ancestor of a and b after both
// are made absolute. Segments are compared exactly, and paths whose first
// segment differs (such as C:\ and D:\) fail with ErrInvalidInput.
func (c *Calculator) RelativeRoot(a, b string) (Path, error) {
	pa, pb, err := c.absPair(a, b)
	if err != nil {
		return Path{}, err
	}
	return relativeRoot(pa, pb)
}

// RelatedTo returns the path that leads from src to dst: one ".." for each
// segment of src below the relative root, then the segments of dst below
// it. The result is relative and renders as "." when dst and src are equal.
func (c *Calculator) RelatedTo(dst, src string) (Path, error) {
	pd, ps, err := c.absPair(dst, src)
	if err != nil {
		return Path{}, err
	}
	root, err := relativeRoot(pd, ps)
	if err != nil {
		return Path{}, err
	}

	n := root.Len()
	up := make([]Segment, len(ps.segs)-n)
	for i := range up {
		up[i] = parentDir
	}
	return newPath(c.style, up, pd.segs[n:]), nil
}

func (c *Calculator) absPair(a, b string) (Path, Path, error) {
	pa, err := c.Abs(a)
	if err != nil {
		return Path{}, Path{}, err
	}
	pb, err := c.Abs(b)
	if err != nil {
		return Path{}, Path{}, err
	}
	return pa, pb, nil
}

func relativeRoot(pa, pb Path) (Path, error) {
	if pa.IsEmpty() || pb.IsEmpty() || pa.segs[0] != pb.segs[0] {
		return Path{}, fmt.Errorf("%q and %q have no common root: %w", pa, pb, ErrInvalidInput)
	}
	n := 1
	for n < len(pa.segs) && n < len(pb.segs) && pa.segs[n] == pb.segs[n] {
		n++
	}
	return newPath(pa.style, pa.segs[:n]), nil
}
