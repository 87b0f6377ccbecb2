package dialogs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// BuiltinFamilies are always offered by the font picker. They render with
// the theme fonts.
var BuiltinFamilies = []string{"JetBrains Mono", "Sans", "Serif", "Courier", "Monospace"}

// FontLibrary indexes font files found in a set of directories by family
// name. The family is the file name without its extension.
type FontLibrary struct {
	files  map[string]string
	cache  map[string]fyne.Resource
	logger zerolog.Logger
}

// NewFontLibrary scans dirs for .ttf and .otf files. Missing directories are
// skipped.
func NewFontLibrary(dirs []string) *FontLibrary {
	lib := &FontLibrary{
		files:  make(map[string]string),
		cache:  make(map[string]fyne.Resource),
		logger: zerolog.Nop(),
	}
	for _, dir := range dirs {
		lib.scan(dir)
	}
	return lib
}

// SetLogger configures the logger for font loading
func (l *FontLibrary) SetLogger(logger zerolog.Logger) {
	l.logger = logger
}

func (l *FontLibrary) scan(dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
			family := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			if _, seen := l.files[family]; !seen {
				l.files[family] = path
			}
		}
		return nil
	})
}

// Families returns the built-in families followed by the scanned ones,
// sorted and without duplicates.
func (l *FontLibrary) Families() []string {
	families := append([]string{}, BuiltinFamilies...)
	var found []string
	for family := range l.files {
		if !containsString(BuiltinFamilies, family) {
			found = append(found, family)
		}
	}
	sort.Strings(found)
	return append(families, found...)
}

// Resource loads the font file for family, or returns nil when the family
// has no file and should render with the theme font.
func (l *FontLibrary) Resource(family string) fyne.Resource {
	if res, ok := l.cache[family]; ok {
		return res
	}
	path, ok := l.files[family]
	if !ok {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", path).Msg("font file could not be loaded")
		res = nil
	}
	l.cache[family] = res
	return res
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
