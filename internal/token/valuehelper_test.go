package token

import "github.com/joshuafuller/pathod/internal/settings"

// render concatenates a slice of values.Value generators into a single
// byte string, the same way internal/emit eventually would but without
// pulling in that package here.
func render(t interface {
	Values(s *settings.Settings) ([]Value, error)
}, s *settings.Settings) (string, error) {
	vs, err := t.Values(s)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0)
	for _, v := range vs {
		out = append(out, v.Slice(0, v.Len())...)
	}
	return string(out), nil
}
