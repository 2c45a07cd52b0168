package pathcalc

import (
	"os"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// HomeFunc reports the current user's home directory. An empty result means
// the environment has no home configured.
type HomeFunc func() (string, error)

// WorkDirFunc reports the directory relative paths are resolved against.
type WorkDirFunc func() (string, error)

func init() {
	// The home directory is re-read on every call.
	homedir.DisableCache = true
}

// EnvHome reads the home directory from the process environment, falling
// back to the platform's user database when no home variable is set. A home
// variable that is set but empty reports "", which HomeDir rejects.
func EnvHome() (string, error) {
	for _, key := range homeVars() {
		if dir, ok := os.LookupEnv(key); ok {
			if dir == "" {
				return "", nil
			}
			break
		}
	}
	return homedir.Dir()
}

// homeVars lists the variables go-homedir consults, in order.
func homeVars() []string {
	if runtime.GOOS == "windows" {
		return []string{"HOME", "USERPROFILE"}
	}
	return []string{"HOME"}
}

// StaticHome returns a HomeFunc that always reports dir.
func StaticHome(dir string) HomeFunc {
	return func() (string, error) {
		return dir, nil
	}
}

// EnvWorkDir reports the process working directory.
func EnvWorkDir() (string, error) {
	return os.Getwd()
}

// StaticWorkDir returns a WorkDirFunc that always reports dir.
func StaticWorkDir(dir string) WorkDirFunc {
	return func() (string, error) {
		return dir, nil
	}
}
