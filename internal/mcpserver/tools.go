package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shesviral/viralkit/internal/catalog"
)

func scriptTypeNames() []string {
	names := make([]string, 0, len(catalog.ScriptTypes))
	for _, t := range catalog.ScriptTypes {
		names = append(names, string(t))
	}
	return names
}

// registerTools registers the wizard tools with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get-state",
			mcp.WithDescription("Show the current wizard state: step, selections, active slot and whether the wizard can advance"),
		),
		s.handleGetState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-styles",
			mcp.WithDescription("List the visual styles; styles mentioning mistakes switch to the mistake rule set"),
		),
		s.handleListStyles,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-hooks",
			mcp.WithDescription("List hooks for the selected style's family, optionally for one category"),
			mcp.WithString("category",
				mcp.Description("Category slug, e.g. ex-tiktok or professor-mistakes"),
			),
		),
		s.handleListHooks,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-scripts",
			mcp.WithDescription("List scripts of the active slot's category with eligibility and disabled reasons"),
			mcp.WithString("type",
				mcp.Description("Script type to list instead of the active category"),
				mcp.Enum(scriptTypeNames()...),
			),
		),
		s.handleListScripts,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("select-style",
			mcp.WithDescription("Select a visual style by id"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Style id, e.g. vs1")),
		),
		s.handleSelectStyle,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("select-hook",
			mcp.WithDescription("Select a hook by id"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Hook id, e.g. h1")),
		),
		s.handleSelectHook,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("select-script",
			mcp.WithDescription("Assign a script to a slot; rejected when the script is not eligible there"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Script id, e.g. s1")),
			mcp.WithNumber("slot", mcp.Description("Slot number 1-5 (defaults to the active slot)")),
		),
		s.handleSelectScript,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("remove-script",
			mcp.WithDescription("Clear a slot and make it the active slot"),
			mcp.WithNumber("slot", mcp.Required(), mcp.Description("Slot number 1-5")),
		),
		s.handleRemoveScript,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("focus-slot",
			mcp.WithDescription("Make an empty slot the active slot"),
			mcp.WithNumber("slot", mcp.Required(), mcp.Description("Slot number 1-5")),
		),
		s.handleFocusSlot,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("select-tab",
			mcp.WithDescription("Choose the category tab for the active slot"),
			mcp.WithString("type", mcp.Required(),
				mcp.Description("Script type of the tab"),
				mcp.Enum(scriptTypeNames()...),
			),
		),
		s.handleSelectTab,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("advance-step",
			mcp.WithDescription("Go to the next step when the current one is complete"),
		),
		s.handleAdvanceStep,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("retreat-step",
			mcp.WithDescription("Go back one step"),
		),
		s.handleRetreatStep,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("back-to-edit",
			mcp.WithDescription("Return to the style step keeping every selection"),
		),
		s.handleBackToEdit,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("history",
			mcp.WithDescription("List the accepted intents of this session in order"),
		),
		s.handleHistory,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("summary",
			mcp.WithDescription("Render the content summary"),
			mcp.WithString("format",
				mcp.Description("markdown (default) or text"),
				mcp.Enum("markdown", "text"),
			),
			mcp.WithBoolean("export", mcp.Description("Also write the markdown summary to the export directory")),
		),
		s.handleSummary,
	)
}
