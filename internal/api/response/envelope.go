// Package response renders every API outcome in the same
// {"status", "message", "data"} envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every response, success or failure.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// empty renders as {} so clients can always treat data as an object.
var empty = struct{}{}

// New builds an envelope; a nil data becomes an empty object.
func New(status bool, message string, data any) Envelope {
	if data == nil {
		data = empty
	}
	return Envelope{Status: status, Message: message, Data: data}
}

// OK writes a 200 success envelope.
func OK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, New(true, message, data))
}

// Fail writes a failure envelope with the given status code.
func Fail(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, New(false, message, data))
}
