package pathcalc

import "fmt"

// Absolutizer turns any path into an absolute one without touching the
// filesystem and without any knowledge of "~".
type Absolutizer interface {
	Absolutize(p Path) (Path, error)
}

// LexicalAbsolutizer resolves relative paths against a working directory
// and collapses "." and "name/.." pairs. A ".." directly under the root is
// dropped.
//
// Windows paths follow the volume rules of the platform: `\x` takes the
// working directory's volume, and `C:x` is joined with the working
// directory only when that directory is on C:, otherwise it becomes `C:\x`.
type LexicalAbsolutizer struct {
	// WorkDir defaults to EnvWorkDir when nil.
	WorkDir WorkDirFunc
}

// Absolutize implements Absolutizer.
func (a LexicalAbsolutizer) Absolutize(p Path) (Path, error) {
	if p.IsAbs() {
		n := p.anchorLen()
		return collapse(p.style, p.segs[:n], p.segs[n:]), nil
	}

	wd, err := a.workDir(p.style)
	if err != nil {
		return Path{}, err
	}
	n := wd.anchorLen()
	segs := p.segs

	switch {
	case len(segs) > 0 && segs[0].Kind == Prefix:
		if wd.segs[0] != segs[0] {
			// Drive-relative path on a drive other than the working directory's.
			anchor := []Segment{segs[0], p.style.rootDir()}
			return collapse(p.style, anchor, segs[1:]), nil
		}
		segs = segs[1:]
	case len(segs) > 0 && segs[0].Kind == RootDir:
		anchor := []Segment{p.style.rootDir()}
		if wd.segs[0].Kind == Prefix {
			anchor = []Segment{wd.segs[0], p.style.rootDir()}
		}
		return collapse(p.style, anchor, segs[1:]), nil
	}

	return collapse(p.style, wd.segs[:n], wd.segs[n:], segs), nil
}

func (a LexicalAbsolutizer) workDir(style Style) (Path, error) {
	fn := a.WorkDir
	if fn == nil {
		fn = EnvWorkDir
	}
	dir, err := fn()
	if err != nil {
		return Path{}, fmt.Errorf("working directory: %w", err)
	}
	wd := style.Parse(dir)
	if !wd.IsAbs() {
		return Path{}, fmt.Errorf("working directory %q is not absolute: %w", dir, ErrInvalidInput)
	}
	return wd, nil
}

// collapse appends each run in rest to anchor, dropping "." and letting
// ".." remove the previous name. The anchor itself is never removed.
func collapse(style Style, anchor []Segment, rest ...[]Segment) Path {
	out := newPath(style, anchor)
	for _, run := range rest {
		for _, seg := range run {
			switch seg.Kind {
			case CurDir:
			case ParentDir:
				if len(out.segs) > len(anchor) {
					out.segs = out.segs[:len(out.segs)-1]
				}
			default:
				out.segs = append(out.segs, seg)
			}
		}
	}
	return out
}
