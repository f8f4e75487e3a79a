package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brendandebeasi/tmux-up/pkg/document"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is a profile file found in a search location.
type Profile struct {
	Name string
	Path string
	Dir  string
}

// FindProfile resolves a profile name against SearchDirs.
func FindProfile(name string) (string, error) {
	return FindProfileIn(SearchDirs(), name)
}

// FindProfileIn returns the first NAME.<ext> in dirs, trying directories in
// order and extensions in document.Extensions order. A name that already
// carries a recognized extension and names an existing file is returned
// as-is.
func FindProfileIn(dirs []string, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrProfileNotFound)
	}
	if hasProfileExt(name) && isFile(name) {
		return name, nil
	}
	for _, dir := range dirs {
		for _, ext := range document.Extensions {
			path := filepath.Join(dir, name+ext)
			if isFile(path) {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s)", ErrProfileNotFound, name, strings.Join(dirs, ", "))
}

// ListProfiles enumerates SearchDirs.
func ListProfiles() ([]Profile, error) {
	return ListProfilesIn(SearchDirs())
}

// ListProfilesIn returns every profile name in dirs once, sorted by name.
// When a name appears in several places the earlier directory wins, which
// matches FindProfileIn. Missing directories are skipped.
func ListProfilesIn(dirs []string) ([]Profile, error) {
	seen := make(map[string]bool)
	var profiles []Profile
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read profile dir %s: %w", dir, err)
		}

		// dev.yaml and dev.toml in one directory list once, with the
		// path FindProfileIn would pick.
		names := make(map[string]bool)
		for _, e := range entries {
			if e.IsDir() || !hasProfileExt(e.Name()) {
				continue
			}
			names[strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))] = true
		}
		for name := range names {
			if seen[name] {
				continue
			}
			path, err := FindProfileIn([]string{dir}, name)
			if err != nil {
				continue
			}
			seen[name] = true
			profiles = append(profiles, Profile{Name: name, Path: path, Dir: dir})
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles, nil
}

func hasProfileExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range document.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
