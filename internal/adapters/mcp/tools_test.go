package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
	"hidenb/internal/domain"
)

func testEnv(t *testing.T, folders []domain.Folder) (commands.Env, *application.Settings) {
	t.Helper()
	settings := application.NewSettings(memory.NewSettingsStore(nil))
	require.NoError(t, settings.RegisterDefaults(context.Background()))
	return commands.Env{
		Settings:   settings,
		Data:       &memory.DataSource{Folders: folders},
		Dialogs:    memory.NewDialogs(false),
		Stylesheet: application.NewStylesheet(settings, &memory.Chrome{}, "/data"),
	}, settings
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestHideHandler(t *testing.T) {
	env, settings := testEnv(t, []domain.Folder{
		{ID: "A", Title: "Archive"},
		{ID: "B", ParentID: "A", Title: "Old"},
		{ID: "C", Title: "Current"},
	})

	text, isErr := call(t, hideHandler(env), map[string]any{"folder_id": "A"})
	assert.False(t, isErr, text)

	hidden, err := settings.Hidden(context.Background())
	require.NoError(t, err)
	assert.True(t, hidden.Contains("B"))

	text, isErr = call(t, hideHandler(env), map[string]any{"folder_id": "C"})
	assert.True(t, isErr)
	assert.Equal(t, application.LastNotebookNotice, text)
}

func TestShowHiddenHandler_RequiresConfirm(t *testing.T) {
	env, settings := testEnv(t, []domain.Folder{{ID: "A"}, {ID: "C"}})
	ctx := context.Background()
	require.NoError(t, settings.SetHidden(ctx, domain.NewHiddenSet("A")))

	_, isErr := call(t, showHiddenHandler(env), map[string]any{"confirm": false})
	assert.True(t, isErr)
	hidden, _ := settings.Hidden(ctx)
	assert.Equal(t, 1, hidden.Len())

	_, isErr = call(t, showHiddenHandler(env), map[string]any{"confirm": true})
	assert.False(t, isErr)
	hidden, _ = settings.Hidden(ctx)
	assert.Equal(t, 0, hidden.Len())
}

func TestListHandler(t *testing.T) {
	env, settings := testEnv(t, []domain.Folder{
		{ID: "A", Title: "Archive"},
		{ID: "B", ParentID: "A", Title: "Old"},
		{ID: "C", Title: "Current"},
	})
	require.NoError(t, settings.SetHidden(context.Background(), domain.NewHiddenSet("A")))

	text, isErr := call(t, listHandler(env), map[string]any{"hidden_only": true})
	require.False(t, isErr)
	assert.Contains(t, text, "[x] Archive  A")
	assert.Contains(t, text, "[x]   Old  B")
	assert.False(t, strings.Contains(text, "Current"))
	assert.Contains(t, text, "showTrash: true")
}

func TestToggleAndStylesheetHandlers(t *testing.T) {
	env, _ := testEnv(t, nil)

	text, isErr := call(t, stylesheetHandler(env), nil)
	require.False(t, isErr)
	assert.Equal(t, "/* nothing hidden */", text)

	_, isErr = call(t, toggleTrashHandler(env), nil)
	require.False(t, isErr)
	_, isErr = call(t, toggleAllNotesHandler(env), nil)
	require.False(t, isErr)

	text, _ = call(t, stylesheetHandler(env), nil)
	assert.Contains(t, text, ".all-notes")
	assert.Contains(t, text, "~ *")
}
