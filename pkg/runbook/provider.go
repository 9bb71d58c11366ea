// Package runbook supplies investigation runbook content to agents.
//
// Remote fetching is intentionally not implemented: alert-supplied runbook
// URLs are stored on the session for operators, while agents receive the
// configured static guide.
package runbook

import (
	"context"
	"log/slog"
)

// Provider resolves runbook content for a session.
type Provider interface {
	// Resolve returns the runbook content to hand to agents. runbookURL is
	// the per-alert URL from submission, empty when the alert carried none.
	Resolve(ctx context.Context, runbookURL string) (string, error)
}

// StaticProvider serves a fixed guide regardless of the alert's runbook URL.
type StaticProvider struct {
	content string
}

// NewStaticProvider creates a provider serving the given content, typically
// config.Defaults.Runbook (the built-in troubleshooting guide unless
// overridden in tarsy.yaml).
func NewStaticProvider(content string) *StaticProvider {
	return &StaticProvider{content: content}
}

// Resolve returns the static content. A non-empty URL is noted but not
// fetched.
func (p *StaticProvider) Resolve(_ context.Context, runbookURL string) (string, error) {
	if runbookURL != "" {
		slog.Debug("Alert runbook URL recorded but not fetched, serving static guide",
			"runbook_url", runbookURL)
	}
	return p.content, nil
}
