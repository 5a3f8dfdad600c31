package token

import (
	"strconv"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

// Code is a response's numeric status line code (spec.md §3.2). 800 is
// the reserved sentinel used for the engine's own internal-error
// response (spec.md §6, "800 sentinel").
type Code struct {
	Code int
}

func (c *Code) Spec() string { return strconv.Itoa(c.Code) }

func (c *Code) Values(s *settings.Settings) ([]Value, error) {
	return []Value{values.NewLiteral([]byte(strconv.Itoa(c.Code))), values.NewLiteral([]byte(" "))}, nil
}
