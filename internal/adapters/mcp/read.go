package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hidenb/internal/application/commands"
	"hidenb/internal/domain"
)

// RegisterReadTools adds the read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, env commands.Env) {
	s.AddTool(listTool(), listHandler(env))
	s.AddTool(stylesheetTool(), stylesheetHandler(env))
}

// --- list_notebooks ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_notebooks",
		mcp.WithDescription("List every notebook as a tree, marking hidden ones, followed by the sidebar display flags."),
		mcp.WithBoolean("hidden_only",
			mcp.Description("Only list notebooks that are currently hidden"),
		),
	)
}

func listHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hiddenOnly := req.GetBool("hidden_only", false)

		result, err := commands.NewListNotebooksCommand(env).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, row := range result.Rows {
			if hiddenOnly && !row.Hidden {
				continue
			}
			sb.WriteString(formatRow(row))
			sb.WriteByte('\n')
		}
		if sb.Len() == 0 {
			sb.WriteString("No notebooks.\n")
		}
		fmt.Fprintf(&sb, "\nshowAllNotes: %t\nshowTrash: %t\n", result.Flags.ShowAllNotes, result.Flags.ShowTrash)

		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stylesheet ---

func stylesheetTool() mcp.Tool {
	return mcp.NewTool("stylesheet",
		mcp.WithDescription("Return the CSS currently generated for the sidebar."),
	)
}

func stylesheetHandler(env commands.Env) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStylesheetCommand(env, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.CSS == "" {
			return mcp.NewToolResultText("/* nothing hidden */"), nil
		}
		return mcp.NewToolResultText(result.CSS), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRow(row domain.FolderRow) string {
	mark := " "
	if row.Hidden {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s%s  %s", mark, strings.Repeat("  ", row.Depth), row.Title, row.ID)
}
