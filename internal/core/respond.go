// AngelaMos | 2026
// respond.go

package core

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details"`
	Timestamp  string       `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, successEnvelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageEnvelope{Success: true, Message: message})
}

// JSONError renders any failure as the uniform error envelope. Clients can
// branch on statusCode alone; the shape never varies with the cause.
func JSONError(w http.ResponseWriter, err error) {
	app := Normalize(err)

	if app.Status >= http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
	}

	details := app.Details
	if len(details) == 0 {
		details = []FieldError{{Field: "general", Message: app.Message}}
	}

	writeJSON(w, app.Status, errorEnvelope{
		Success: false,
		Error: errorBody{
			StatusCode: app.Status,
			Message:    app.Message,
			Details:    details,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, NewAppError(http.StatusBadRequest, message))
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, NotFoundError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	JSONError(w, &AppError{
		Status: http.StatusInternalServerError,
		Err:    err,
	})
}
