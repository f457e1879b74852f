package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestIconResolver(t *testing.T) {
	base := t.TempDir()
	icons := t.TempDir()
	local := touch(t, filepath.Join(base, "app.png"))
	themed := touch(t, filepath.Join(icons, "hicolor", "scalable", "apps", "terminal.svg"))
	loose := touch(t, filepath.Join(icons, "logo.png"))

	r := &IconResolver{BasePath: base, SearchDirs: []string{icons}}

	assert.Equal(t, local, r.Resolve("app.png"))
	assert.Equal(t, themed, r.Resolve("terminal"), "bare names try each extension")
	assert.Equal(t, loose, r.Resolve("logo"))
	assert.Equal(t, "/opt/icon.png", r.Resolve("/opt/icon.png"))
	assert.Empty(t, r.Resolve("nested/missing.png"))
	assert.Empty(t, r.Resolve("missing"))
	assert.Empty(t, r.Resolve(""))
}
