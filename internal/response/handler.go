package response

import (
	"net/http"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

// responseHandler logs through the request's context logger, so it carries
// no state of its own.
type responseHandler struct{}

func New() *responseHandler {
	return &responseHandler{}
}
