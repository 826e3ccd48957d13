// Package response defines the wire shapes shared across handlers.
package response

import "github.com/labstack/echo/v4"

// Detail is the error body: a single human-readable string under "detail".
type Detail struct {
	Detail string `json:"detail"`
}

// Message is the body of simple confirmation responses.
type Message struct {
	Message string `json:"message"`
}

// Error writes an error body with the given status code.
func Error(c echo.Context, code int, detail string) error {
	return c.JSON(code, Detail{Detail: detail})
}
