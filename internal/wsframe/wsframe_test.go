package wsframe

import "testing"

func TestHeader_CanonicalBytes(t *testing.T) {
	h := Header()
	if len(h) != 2 {
		t.Fatalf("Header() length = %d, want 2", len(h))
	}
	if h[0] != 0x82 {
		t.Errorf("Header()[0] = 0x%02x, want 0x82 (FIN=1, opcode=binary)", h[0])
	}
	if h[1] != 0x00 {
		t.Errorf("Header()[1] = 0x%02x, want 0x00 (MASK=0, len=0)", h[1])
	}
}

func TestComputeAcceptKey_RFC6455Example(t *testing.T) {
	// RFC 6455 §1.3 worked example.
	got := ComputeAcceptKey("dGhlIHNhbXBsZSBub25jZQ==")
	want := "s3pPLMBiTxaQ9kYGzzhZRbK+xOo="
	if got != want {
		t.Errorf("ComputeAcceptKey() = %q, want %q", got, want)
	}
}

func TestServerHandshakeHeaders_IncludesAccept(t *testing.T) {
	hdrs := ServerHandshakeHeaders("dGhlIHNhbXBsZSBub25jZQ==")
	found := false
	for _, h := range hdrs {
		if h.Name == "Sec-WebSocket-Accept" {
			found = true
			if h.Value != "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=" {
				t.Errorf("Sec-WebSocket-Accept = %q, want RFC example value", h.Value)
			}
		}
	}
	if !found {
		t.Fatal("ServerHandshakeHeaders() missing Sec-WebSocket-Accept")
	}
}

func TestClientHandshakeHeaders_IncludesVersionAndFreshKey(t *testing.T) {
	hdrs := ClientHandshakeHeaders()
	names := map[string]string{}
	for _, h := range hdrs {
		names[h.Name] = h.Value
	}
	if names["Sec-WebSocket-Key"] == "" {
		t.Error("Sec-WebSocket-Key is empty, want a freshly generated key")
	}
	if names["Sec-WebSocket-Version"] != "13" {
		t.Errorf("Sec-WebSocket-Version = %q, want 13", names["Sec-WebSocket-Version"])
	}
}

func TestNewClientKey_VariesAcrossCalls(t *testing.T) {
	a := NewClientKey()
	b := NewClientKey()
	if a == b {
		t.Error("NewClientKey() returned the same key twice in a row")
	}
}
