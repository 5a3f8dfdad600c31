package wsframe

// opcodeBinary is RFC 6455 §5.2's binary-data-frame opcode. The
// grammar's "wf" construct never selects another frame type (spec.md
// §6: "canonical frame header ... for wf without explicit flags"), so
// there is nothing in this module that would exercise the table's
// other opcodes (text, close, ping, pong) — only this one is ever
// produced.
const opcodeBinary = 0x02

// Header returns the canonical two-byte WebSocket data-frame header
// spec.md §6 mandates for "wf" without explicit flags: FIN=1,
// opcode=binary, MASK=0, payload-length=0.
func Header() []byte {
	const fin = 0x80
	const maskAndLen = 0x00
	return []byte{fin | opcodeBinary, maskAndLen}
}
