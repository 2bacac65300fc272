package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sparklewash/billing/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendEntityErr maps a domain error to its status code. The transport layer
// owns this translation; the core only returns typed errors.
func sendEntityErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	var code int

	switch {
	case errors.Is(err, entity.ErrInvalidArgument), errors.Is(err, entity.ErrInvalidReference):
		code = http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entity.ErrChangePending),
		errors.Is(err, entity.ErrNoChangePending),
		errors.Is(err, entity.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, entity.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	default:
		code = http.StatusInternalServerError
	}

	SendJSONErr(ctx, w, code, err, msgToSend)
}
