package token

import "github.com/joshuafuller/pathod/internal/settings"

// WF marks a WebsocketFrame message as carrying a raw frame header
// built by internal/wsframe rather than one assembled from component
// tokens (spec.md §3.3, WebsocketFrame preamble assembly, §6 "canonical
// frame header construction").
type WF struct{}

func (WF) Spec() string { return "wf" }

func (WF) Values(s *settings.Settings) ([]Value, error) { return nil, nil }
