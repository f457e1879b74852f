package internal

import (
	"os"
	"path/filepath"
	"strings"
)

var iconExtensions = []string{".svg", ".png"}

var iconThemeSubdirs = []string{
	"hicolor/scalable/apps",
	"hicolor/48x48/apps",
	"hicolor/32x32/apps",
	"hicolor/24x24/apps",
	"",
}

// IconResolver turns an icon spec into a file path.
type IconResolver struct {
	BasePath   string   // tried first for relative specs
	SearchDirs []string // icon theme roots, e.g. /usr/share/icons
	exists     func(string) bool
}

// NewIconResolver creates a resolver searching the XDG icon directories.
func NewIconResolver(basePath string) *IconResolver {
	return &IconResolver{
		BasePath:   basePath,
		SearchDirs: xdgIconDirs(),
		exists:     fileExists,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func xdgIconDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "icons"))
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range filepath.SplitList(dataDirs) {
		dirs = append(dirs, filepath.Join(d, "icons"))
	}
	return append(dirs, "/usr/share/pixmaps")
}

// Resolve returns the path for spec, or "" if nothing is found.
//
// An absolute spec is returned as is. A relative spec is first tried beneath
// BasePath. A bare name (no directory part) is then looked up in the icon
// theme directories, with or without an extension.
func (r *IconResolver) Resolve(spec string) string {
	if spec == "" {
		return ""
	}
	exists := r.exists
	if exists == nil {
		exists = fileExists
	}

	if filepath.IsAbs(spec) {
		return spec
	}

	if r.BasePath != "" {
		candidate := filepath.Join(r.BasePath, spec)
		if exists(candidate) {
			return candidate
		}
	}

	if strings.ContainsRune(spec, filepath.Separator) {
		if exists(spec) {
			return spec
		}
		return ""
	}

	names := []string{spec}
	if filepath.Ext(spec) == "" {
		names = names[:0]
		for _, ext := range iconExtensions {
			names = append(names, spec+ext)
		}
	}

	for _, dir := range r.SearchDirs {
		for _, sub := range iconThemeSubdirs {
			for _, name := range names {
				candidate := filepath.Join(dir, sub, name)
				if exists(candidate) {
					return candidate
				}
			}
		}
	}
	return ""
}
