package models

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentModel revises paragraphs through a go-agents chat agent. The provider
// and model are supplied by configuration; retries, timeouts, and rate
// limiting belong to the agent layer, not here.
type AgentModel struct {
	config gaconfig.AgentConfig
	logger *slog.Logger
}

// NewAgent creates an AgentModel from a finalized agent configuration.
func NewAgent(config gaconfig.AgentConfig, logger *slog.Logger) *AgentModel {
	return &AgentModel{
		config: config,
		logger: logger,
	}
}

// Revise implements Model by sending the composed prompt to the chat agent.
func (m *AgentModel) Revise(ctx context.Context, req Request) (string, error) {
	a, err := agent.New(&m.config)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrModelFailed, err)
	}

	prompt := composePrompt(req)

	m.logger.DebugContext(
		ctx, "revising paragraph",
		"model", m.config.Model.Name,
		"paragraph_chars", len(req.Paragraph),
	)

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrModelFailed, err)
	}

	revised := strings.TrimSpace(resp.Content())
	if revised == "" {
		return "", fmt.Errorf("%w: empty completion", ErrModelFailed)
	}

	return revised, nil
}

// composePrompt appends the paragraph to the instruction text, separated by
// a blank line.
func composePrompt(req Request) string {
	return strings.TrimSpace(req.Prompt) + "\n\n" + strings.TrimSpace(req.Paragraph)
}
