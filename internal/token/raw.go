package token

import "github.com/joshuafuller/pathod/internal/settings"

// Raw suppresses the resolver's auto-header synthesis for the message
// it appears in — no Content-Length, no Host (spec.md §4.3 step 2:
// "skipped entirely when the message carries a Raw token").
type Raw struct{}

func (Raw) Spec() string { return "r" }

func (Raw) Values(s *settings.Settings) ([]Value, error) { return nil, nil }
