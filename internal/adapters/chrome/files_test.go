package chrome

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_WriteFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "plugin", "generated.css")
	f := NewFiles(dir)

	require.NoError(t, f.WriteFile(ctx, path, "a {}\n"))
	require.NoError(t, f.WriteFile(ctx, path, ""))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(got))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be gone")
}

func TestFiles_LoadStylesheetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := NewFiles(dir)

	userRules := ".sidebar { background: black; }\n"
	require.NoError(t, os.WriteFile(f.UserChromePath(), []byte(userRules), 0644))

	css := filepath.Join(dir, "plugin", "generated.css")
	require.NoError(t, f.LoadStylesheet(ctx, css))
	require.NoError(t, f.LoadStylesheet(ctx, css))

	got, err := os.ReadFile(f.UserChromePath())
	require.NoError(t, err)
	content := string(got)

	assert.Equal(t, 1, strings.Count(content, ImportLine(css)))
	assert.True(t, strings.HasPrefix(content, "@import"))
	assert.Contains(t, content, userRules)
}

func TestFiles_LoadStylesheetCreatesUserChrome(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profile")
	f := NewFiles(dir)

	require.NoError(t, f.LoadStylesheet(context.Background(), "/data/generated.css"))

	got, err := os.ReadFile(f.UserChromePath())
	require.NoError(t, err)
	assert.Equal(t, `@import url("/data/generated.css");`+"\n", string(got))
}

func TestFiles_LoadStylesheetWithoutProfile(t *testing.T) {
	err := NewFiles("").LoadStylesheet(context.Background(), "/data/generated.css")
	assert.Error(t, err)
}
