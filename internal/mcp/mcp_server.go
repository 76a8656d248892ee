// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitvalue MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitvalue Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_contributor_scores ---
	s.AddTool(mcp.NewTool("get_contributor_scores",
		mcp.WithDescription("Analyze git history and score each contributor on quality, difficulty and value (0-100), with a work-style label."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the server's configured repository).")),
		mcp.WithNumber("months", mcp.Description("Number of months to analyze. 0 analyzes the entire history.")),
		mcp.WithString("sort_by", mcp.Description("Sort metric. Defaults to 'value'."), mcp.Enum("value", "quality", "difficulty", "commits")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetContributorScores)

	// --- 2. Tool: verify_commit_message ---
	s.AddTool(mcp.NewTool("verify_commit_message",
		mcp.WithDescription("Check whether a commit message matches the actual changes in a diff, and profile the impact of the added lines."),
		mcp.WithString("message", mcp.Description("The commit message to verify."), mcp.Required()),
		mcp.WithString("diff", mcp.Description("The unified diff text of the change."), mcp.Required()),
	), h.handleVerifyCommitMessage)

	return s
}

// StartMCPServer starts the gitvalue MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
