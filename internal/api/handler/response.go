package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform response wrapper: {"success": true, "data": ...} on
// success, {"success": false, "error": "..."} on failure. Error envelopes are
// rendered centrally by the API error handler; handlers only emit successes.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}
