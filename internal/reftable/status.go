// Package reftable holds the fixed reference data spec.md §1 calls out
// as external collaborators with a fixed interface: the HTTP
// status-code reason-phrase table, the user-agent shortcut table, and
// the WebSocket handshake header names (RFC 6455 §4).
package reftable

// UnknownReason is substituted when Reason(code) has no table entry
// (spec.md §3.2, Reason component description).
const UnknownReason = "Unknown code"

var statusReasons = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Request Entity Too Large",
	414: "Request-URI Too Long",
	415: "Unsupported Media Type",
	416: "Requested Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
	// 800 is pathod's own sentinel for emission-time errors (spec.md §6),
	// outside the HTTP range; it has no IANA reason phrase, so its
	// default lives here next to the rest of the table, overridable per
	// response like any other reason.
	800: "Pathod Internal Error",
}

// Reason returns the reason phrase for an HTTP status code, falling
// back to UnknownReason when the code is not in the table (spec.md §3.2).
func Reason(code int) string {
	if r, ok := statusReasons[code]; ok {
		return r
	}
	return UnknownReason
}
