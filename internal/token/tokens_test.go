package token

import "testing"

// Static interface-conformance checks, in the idiom of
// `var _ Interface = (*Type)(nil)`.
var (
	_ Component = (*Header)(nil)
	_ Component = (*ContentType)(nil)
	_ Component = (*Location)(nil)
	_ Component = (*UserAgent)(nil)
	_ Component = (*Body)(nil)
	_ Component = (*Method)(nil)
	_ Component = (*Path)(nil)
	_ Component = (*Code)(nil)
	_ Component = (*Reason)(nil)
	_ Component = (*PathodSpec)(nil)
	_ Component = Raw{}
	_ Component = WS{}
	_ Component = WF{}

	_ resolvable = (*PauseAt)(nil)
	_ resolvable = (*DisconnectAt)(nil)
	_ resolvable = (*InjectAt)(nil)

	_ freezable = (*Header)(nil)
	_ freezable = (*ContentType)(nil)
	_ freezable = (*Location)(nil)
	_ freezable = (*UserAgent)(nil)
	_ freezable = (*Body)(nil)
	_ freezable = (*Method)(nil)
	_ freezable = (*Path)(nil)
	_ freezable = (*Reason)(nil)
	_ freezable = (*PathodSpec)(nil)
	_ freezable = (*InjectAt)(nil)
)

func TestOffsetSpec_Spec(t *testing.T) {
	cases := []struct {
		in   OffsetSpec
		want string
	}{
		{OffsetSpec{Kind: OffsetNumeric, Value: 42}, "42"},
		{OffsetSpec{Kind: OffsetRandom}, "r"},
		{OffsetSpec{Kind: OffsetAfter}, "a"},
	}
	for _, c := range cases {
		if got := c.in.spec(); got != c.want {
			t.Errorf("OffsetSpec(%+v).spec() = %q, want %q", c.in, got, c.want)
		}
	}
}
