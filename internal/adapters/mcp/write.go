package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
)

// RegisterWriteTools adds the tools that change what the sidebar shows.
func RegisterWriteTools(s *server.MCPServer, env commands.Env) {
	s.AddTool(hideTool(), hideHandler(env))
	s.AddTool(unhideTool(), unhideHandler(env))
	s.AddTool(showHiddenTool(), showHiddenHandler(env))
	s.AddTool(toggleAllNotesTool(), toggleAllNotesHandler(env))
	s.AddTool(toggleTrashTool(), toggleTrashHandler(env))
}

// withDialogs returns env answering confirmations with answer. An agent has
// no dialog to click, so the answer travels as a tool argument.
func withDialogs(env commands.Env, answer bool) (commands.Env, *memory.Dialogs) {
	d := memory.NewDialogs(answer)
	env.Dialogs = d
	return env, d
}

// --- hide_notebook ---

func hideTool() mcp.Tool {
	return mcp.NewTool("hide_notebook",
		mcp.WithDescription("Hide a notebook and all of its sub-notebooks from the sidebar. Refused when no other notebook would stay visible."),
		mcp.WithString("folder_id",
			mcp.Description("ID of the notebook to hide"),
			mcp.Required(),
		),
	)
}

func hideHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env, dialogs := withDialogs(env, false)

		cmd := commands.NewHideNotebookCommand(env, req.GetString("folder_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, application.ErrLastNotebook) && len(dialogs.Notices()) > 0 {
				return toolError(errors.New(dialogs.Notices()[0]))
			}
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- unhide_notebook ---

func unhideTool() mcp.Tool {
	return mcp.NewTool("unhide_notebook",
		mcp.WithDescription("Show a hidden notebook and its sub-notebooks again."),
		mcp.WithString("folder_id",
			mcp.Description("ID of the hidden notebook"),
			mcp.Required(),
		),
	)
}

func unhideHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUnhideNotebookCommand(env, req.GetString("folder_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- show_hidden_notebooks ---

func showHiddenTool() mcp.Tool {
	return mcp.NewTool("show_hidden_notebooks",
		mcp.WithDescription(fmt.Sprintf("Unhide every hidden notebook. The user must agree to: %q", application.ShowHiddenPrompt)),
		mcp.WithBoolean("confirm",
			mcp.Description("Set to true once the user has agreed"),
			mcp.Required(),
		),
	)
}

func showHiddenHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env, _ := withDialogs(env, req.GetBool("confirm", false))

		result, err := commands.NewShowHiddenNotebooksCommand(env).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Cancelled {
			return toolError(fmt.Errorf("%w: pass confirm=true after asking the user", application.ErrCancelled))
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_all_notes / toggle_trash ---

func toggleAllNotesTool() mcp.Tool {
	return mcp.NewTool("toggle_all_notes",
		mcp.WithDescription(`Show or hide the "All notes" sidebar entry.`),
	)
}

func toggleAllNotesHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleAllNotesCommand(env).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func toggleTrashTool() mcp.Tool {
	return mcp.NewTool("toggle_trash",
		mcp.WithDescription("Show or hide the Trash and everything listed after it in the sidebar."),
	)
}

func toggleTrashHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleTrashCommand(env).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
