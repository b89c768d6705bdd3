package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FS holds the tuning yaml and patrol scripts built into the binary. A file
// of the same name under prefabs/ on disk takes precedence, so tuning can be
// edited without a rebuild.
//
//go:embed *.yaml scripts/*.tengo
var FS embed.FS

const (
	diskRoot  = "prefabs"
	scriptDir = "scripts"
)

// Load returns a tuning file such as "player.yaml".
func Load(name string) ([]byte, error) {
	return read(cleanPath(name, ""))
}

// LoadScript returns a patrol script such as "pace.tengo".
func LoadScript(name string) ([]byte, error) {
	return read(cleanPath(name, scriptDir))
}

// ErrBadPath is returned for names that resolve outside prefabs/.
var ErrBadPath = errors.New("prefabs: path escapes prefabs directory")

func read(clean string) ([]byte, error) {
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("%w: %q", ErrBadPath, clean)
	}
	if data, err := os.ReadFile(filepath.Join(diskRoot, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(FS, clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return data, nil
}

// cleanPath turns a user-supplied name into a path inside FS. Names may be
// given relative to the repo root ("prefabs/scripts/pace.tengo"), to
// prefabs/ ("scripts/pace.tengo") or bare ("pace.tengo").
func cleanPath(name, dir string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(path.Clean(s), diskRoot+"/")
	if dir != "" {
		s = dir + "/" + strings.TrimPrefix(s, dir+"/")
	}
	return path.Clean(s)
}
