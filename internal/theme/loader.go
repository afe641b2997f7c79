package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const themeExt = ".theme"

// Loader resolves theme names against a file path, the embedded defaults,
// the user's config directory and the system directory, in that order.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search directories.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "dragbox", "themes"),
		SystemDir: "/usr/share/dragbox/themes",
	}
}

// Load returns the theme called name. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}

	filename := name
	if !strings.HasSuffix(filename, themeExt) {
		filename += themeExt
	}
	for _, src := range l.sources() {
		if _, err := fs.Stat(src, filename); err == nil {
			return parseFile(src, filename)
		}
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

func (l *Loader) sources() []fs.FS {
	embedded, _ := fs.Sub(EmbeddedThemes, "defaults")
	out := []fs.FS{embedded}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir != "" {
			out = append(out, os.DirFS(dir))
		}
	}
	return out
}

func parseFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, nil
}

// EmbeddedNames lists the themes compiled into the binary.
func EmbeddedNames() []string {
	matches, _ := fs.Glob(EmbeddedThemes, "defaults/*"+themeExt)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), themeExt))
	}
	sort.Strings(names)
	return names
}
