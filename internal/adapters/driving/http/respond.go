package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// statusClientClosedRequest is written when the caller went away before the
// response was ready.
const statusClientClosedRequest = 499

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

// writeError maps err onto a status code. Upstream error text is logged,
// never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input", Fields: vErr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input"})
	case errors.Is(err, domain.ErrNotImplemented):
		writeJSON(w, http.StatusNotImplemented, errorBody{Error: "not available"})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: "timed out"})
	case errors.Is(err, context.Canceled):
		logger.Debug("%s %s: client went away: %v", r.Method, r.URL.Path, err)
		writeJSON(w, statusClientClosedRequest, errorBody{Error: "request cancelled"})
	default:
		logger.Error("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "temporarily unavailable"})
	}
}

// decode reads a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
