package pathod

import "github.com/joshuafuller/pathod/internal/token"

// ErrorResponseCode is the reserved status code used for the engine's
// own internal-error response, distinguishing it from any code a spec
// author might legitimately request (spec.md §6, "800 sentinel").
const ErrorResponseCode = 800

// NewErrorResponse builds the engine's own error response: code 800,
// a text/plain Content-Type, reason as given, and a body explaining
// what went wrong. If body is empty, reason is used as the body text
// too (grounded on the original engine's make_error_response).
func NewErrorResponse(reason, body string) *Message {
	if body == "" {
		body = reason
	}
	return &Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: ErrorResponseCode},
			&token.ContentType{Value: token.NewLiteralValue([]byte("text/plain"), false, '\'')},
			&token.Reason{Value: token.NewLiteralValue([]byte(reason), false, '\'')},
			&token.Body{Value: token.NewLiteralValue([]byte("pathod error: "+body), false, '\'')},
		},
	}
}
