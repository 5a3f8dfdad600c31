package values

// Charset names the predefined alphabets a Generate value samples from
// (spec.md §3.1). The byte contents mirror Python's string module,
// since that is the reference the spec's charset names were drawn
// from.
type Charset string

const (
	CharsetASCIILetters   Charset = "ascii_letters"
	CharsetASCIILowercase Charset = "ascii_lowercase"
	CharsetASCIIUppercase Charset = "ascii_uppercase"
	CharsetDigits         Charset = "digits"
	CharsetHexDigits      Charset = "hexdigits"
	CharsetOctDigits      Charset = "octdigits"
	CharsetPunctuation    Charset = "punctuation"
	CharsetWhitespace     Charset = "whitespace"
	CharsetASCII          Charset = "ascii"
	CharsetBytes          Charset = "bytes"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	hexdigits   = "0123456789abcdefABCDEF"
	octdigits   = "01234567"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	whitespace  = " \t\n\r\v\f"
)

var charsetAlphabets = map[Charset][]byte{
	CharsetASCIILetters:   []byte(lowercase + uppercase),
	CharsetASCIILowercase: []byte(lowercase),
	CharsetASCIIUppercase: []byte(uppercase),
	CharsetDigits:         []byte(digits),
	CharsetHexDigits:      []byte(hexdigits),
	CharsetOctDigits:      []byte(octdigits),
	CharsetPunctuation:    []byte(punctuation),
	CharsetWhitespace:     []byte(whitespace),
	CharsetASCII:          asciiPrintable(),
	CharsetBytes:          allBytes(),
}

func asciiPrintable() []byte {
	// digits + letters + punctuation + whitespace, Python's string.printable order.
	b := []byte(digits + lowercase + uppercase + punctuation + whitespace)
	return b
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Alphabet returns the byte alphabet for a charset name, and whether the
// name is known. An empty name means CharsetBytes (spec.md §3.1); an
// unknown name returns nil and false, and Generate falls back to the
// CharsetBytes alphabet in that case.
func Alphabet(c Charset) ([]byte, bool) {
	if c == "" {
		c = CharsetBytes
	}
	a, ok := charsetAlphabets[c]
	return a, ok
}

// SizeUnit is the multiplier suffix on a Generate size (spec.md §3.1).
type SizeUnit byte

const (
	UnitBytes     SizeUnit = 'b'
	UnitKilobytes SizeUnit = 'k'
	UnitMegabytes SizeUnit = 'm'
	UnitGigabytes SizeUnit = 'g'
)

// Multiplier returns the byte multiplier for a size unit. Default unit
// is UnitBytes (1).
func Multiplier(u SizeUnit) int {
	switch u {
	case UnitKilobytes:
		return 1024
	case UnitMegabytes:
		return 1024 * 1024
	case UnitGigabytes:
		return 1024 * 1024 * 1024
	default:
		return 1
	}
}
