package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GregMSThompson/finance-insights/internal/errs"
)

// decodeBody reads a JSON request body into v. Empty and truncated bodies
// are client errors, not decoder failures.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return errs.NewValidationError("request body is required")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errs.NewValidationError("Malformed request body")
	default:
		return err
	}
}
