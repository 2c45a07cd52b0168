// Package pathcalc computes with filesystem paths without touching the
// filesystem: absolute forms with "~" expansion, the common ancestor of two
// paths, and the relative path from one path to another.
//
// The package-level functions use a Calculator with the native style, the
// environment's home directory and the process working directory. Use New
// to inject a fixed home or working directory, or to compute with Windows
// paths on another platform.
package pathcalc

// std is the Calculator used by package-level functions.
var std = New()

// HomeDir returns the current user's home directory.
func HomeDir() (Path, error) {
	return std.HomeDir()
}

// Abs returns the absolute form of path, expanding a leading "~".
func Abs(path string) (Path, error) {
	return std.Abs(path)
}

// RelativeRoot returns the deepest common ancestor of a and b.
func RelativeRoot(a, b string) (Path, error) {
	return std.RelativeRoot(a, b)
}

// RelatedTo returns the relative path that leads from src to dst.
func RelatedTo(dst, src string) (Path, error) {
	return std.RelatedTo(dst, src)
}
