package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amritasroy/gitvalue/core"
	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleGetContributorScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if m := request.GetInt("months", -1); m >= 0 {
		cfg.Months = m
	}
	if s := request.GetString("sort_by", ""); s != "" {
		key := schema.SortKey(s)
		if _, ok := schema.ValidSortKeys[key]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort_by: %q", s)), nil
		}
		cfg.SortBy = key
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.Limit = l
	}

	if err := h.client.ValidateRepository(ctx, cfg.RepoPath); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("repository validation failed: %v", err)), nil
	}

	results, err := core.AnalyzeContributors(ctx, cfg, h.client, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleVerifyCommitMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	diffText, err := request.RequireString("diff")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	analyzer := core.NewImpactAnalyzer(h.baseCfg)
	output := struct {
		Match  schema.MatchResult   `json:"match"`
		Impact schema.ImpactProfile `json:"impact"`
	}{
		Match:  core.VerifyMessage(message, diffText),
		Impact: analyzer.AnalyzeImpact(ctx, diffText),
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
