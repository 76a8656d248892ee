package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/amritasroy/gitvalue/schema"
	"github.com/sashabaranov/go-openai"
)

// errMissingAPIKey is returned when the semantic backend is requested
// without credentials; the caller falls back to the heuristic analyzer.
var errMissingAPIKey = errors.New("semantic analysis requires an API key")

// semanticTimeout bounds each model call.
const semanticTimeout = 30 * time.Second

const semanticSystemPrompt = `You are a code review assistant. Given a unified diff, ` +
	`estimate what fraction of the added lines are logical code, comments, and ` +
	`print/log statements. Respond with only a JSON object with the keys ` +
	`"logical_impact", "comment_ratio", "print_debug_ratio" and "meaningful_score", ` +
	`each a number between 0 and 1.`

// SemanticAnalyzer scores diff impact with a chat-completion model. Every
// failure path degrades to the embedded heuristic analyzer, so callers always
// get a usable profile.
type SemanticAnalyzer struct {
	client    *openai.Client
	model     string
	heuristic *HeuristicAnalyzer
}

var _ ImpactAnalyzer = &SemanticAnalyzer{} // Compile-time check

// NewSemanticAnalyzer builds the model-backed analyzer. It fails when no API
// key is configured; callers should treat that as a signal to use the
// heuristic analyzer instead.
func NewSemanticAnalyzer(apiKey, baseURL, model string) (*SemanticAnalyzer, error) {
	if apiKey == "" {
		return nil, errMissingAPIKey
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &SemanticAnalyzer{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		heuristic: NewHeuristicAnalyzer(),
	}, nil
}

// AnalyzeImpact asks the model for an impact profile and falls back to the
// heuristic analyzer on any transport, decode, or range error.
func (a *SemanticAnalyzer) AnalyzeImpact(ctx context.Context, diffText string) schema.ImpactProfile {
	if diffText == "" {
		return schema.ImpactProfile{}
	}

	ctx, cancel := context.WithTimeout(ctx, semanticTimeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: semanticSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: diffText},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return a.heuristic.AnalyzeImpact(ctx, diffText)
	}

	profile, err := parseImpactJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return a.heuristic.AnalyzeImpact(ctx, diffText)
	}
	return profile
}

// parseImpactJSON decodes a model response into an ImpactProfile, rejecting
// values outside [0,1].
func parseImpactJSON(content string) (schema.ImpactProfile, error) {
	content = strings.TrimSpace(content)
	// Models occasionally wrap JSON in a fenced block.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var profile schema.ImpactProfile
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &profile); err != nil {
		return schema.ImpactProfile{}, err
	}

	for _, v := range []float64{
		profile.LogicalImpact, profile.CommentRatio,
		profile.PrintDebugRatio, profile.MeaningfulScore,
	} {
		if v < 0 || v > 1 {
			return schema.ImpactProfile{}, errors.New("impact value out of range")
		}
	}
	return profile, nil
}
