package server

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mwehr/plansheet/pkg/types"
)

// tool pairs a tool definition with its handler.
type tool struct {
	def mcp.Tool
	fn  handlerFunc
}

// tools returns the six project tools in the order they are advertised.
func (s *Server) tools() []tool {
	return []tool{
		{
			def: mcp.NewTool("list_projects",
				mcp.WithDescription("List every project in the workbook"),
			),
			fn: s.listProjects,
		},
		{
			def: mcp.NewTool("get_project",
				mcp.WithDescription("Get one project by name"),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Project name to look up")),
			),
			fn: s.getProject,
		},
		{
			def: mcp.NewTool("add_project",
				mcp.WithDescription("Add a new project"),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Project name (must be unique)")),
				mcp.WithString("status",
					mcp.Description("Status (default: "+types.DefaultStatus+")"),
					mcp.Enum(types.Statuses...)),
				mcp.WithString("deadline",
					mcp.Description("Deadline, free text")),
				mcp.WithString("assignee",
					mcp.Description("Assignee, free text")),
				mcp.WithString("notes",
					mcp.Description("Notes, free text")),
			),
			fn: s.addProject,
		},
		{
			def: mcp.NewTool("update_project",
				mcp.WithDescription("Update fields of an existing project; only provided fields change"),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Project name to update")),
				mcp.WithString("status",
					mcp.Description("New status"),
					mcp.Enum(types.Statuses...)),
				mcp.WithString("deadline",
					mcp.Description("New deadline")),
				mcp.WithString("assignee",
					mcp.Description("New assignee")),
				mcp.WithString("notes",
					mcp.Description("New notes")),
			),
			fn: s.updateProject,
		},
		{
			def: mcp.NewTool("delete_project",
				mcp.WithDescription("Delete a project by name"),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Project name to delete")),
			),
			fn: s.deleteProject,
		},
		{
			def: mcp.NewTool("search_projects",
				mcp.WithDescription("Search projects by exact field match"),
				mcp.WithString("status",
					mcp.Description("Filter by status"),
					mcp.Enum(types.Statuses...)),
				mcp.WithString("assignee",
					mcp.Description("Filter by assignee")),
			),
			fn: s.searchProjects,
		},
	}
}
