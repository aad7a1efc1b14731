package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddCategoryTool(srv, svc)
	registerAddMealTool(srv, svc)
	registerRandomizeTool(srv, svc)
	registerResetTool(srv, svc)
	registerGetStateTool(srv, svc)
	registerListCategoriesTool(srv, svc)
}

func registerAddCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_category",
		mcp.WithDescription("Append every meal of a category to the meal pool. A category whose first meal is already pooled is skipped."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category key, label or alias such as fastFood, hawker, japanese, western."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.AddCategory(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerAddMealTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_meal",
		mcp.WithDescription("Add a custom meal to the end of the meal pool."),
		mcp.WithString("meal",
			mcp.Required(),
			mcp.Description("Meal name to add, pooled as given."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Meal string `json:"meal"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return toJSONResult(svc.AddMeal(ctx, args.Meal))
	})
}

func registerRandomizeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"randomize",
		mcp.WithDescription("Pick one meal uniformly at random from the pool. Does nothing when the pool is empty."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Randomize(ctx))
	})
}

func registerResetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reset",
		mcp.WithDescription("Empty the meal pool and stop the celebration."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Reset(ctx))
	})
}

func registerGetStateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_state",
		mcp.WithDescription("Return the current meal pool and selection."),
	)

	srv.AddTool(tool, func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.State())
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List the built-in categories and saved presets."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats, err := svc.Catalog(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"categories": cats, "count": len(cats)})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
