package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldErrorResponse carries per-field validation messages so clients can
// surface them inline next to the offending input.
type FieldErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields"`
	RequestID string            `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

func WriteFieldErrors(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, http.StatusUnprocessableEntity, FieldErrorResponse{
		Error:     "validation failed",
		Fields:    fields,
		RequestID: reqID,
	})
}
