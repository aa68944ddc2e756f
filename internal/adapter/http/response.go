package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// connectionView is the public shape of a connection. Tokens never leave
// the service.
type connectionView struct {
	Platform    domain.Platform `json:"platform"`
	Connected   bool            `json:"connected"`
	AccountID   string          `json:"accountId,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	ConnectedAt *time.Time      `json:"connectedAt,omitempty"`
	ExpiresAt   *time.Time      `json:"expiresAt,omitempty"`
}

func newConnectionView(p domain.Platform, conn domain.PlatformConnection, ok bool) connectionView {
	v := connectionView{Platform: p}
	if !ok || !conn.Connected {
		return v
	}
	v.Connected = true
	v.AccountID = conn.Credentials.AccountID
	v.ConnectedAt = conn.ConnectedAt
	if exp := conn.Credentials.Expiry; !exp.IsZero() {
		v.ExpiresAt = &exp
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps use case errors onto status codes. Unexpected errors are
// logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, port.ErrNotConnected):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: err.Error(),
			Hint:  "connect the platform via POST /api/v1/platforms/connect/{platform}",
		})
	case errors.Is(err, port.ErrUnsupportedPlatform), errors.Is(err, port.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrConflict), errors.Is(err, port.ErrInvalidTransition):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, port.ErrAuth):
		if errors.Is(err, port.ErrPlatformUnavailable) || errors.Is(err, port.ErrPlatformTimeout) {
			writeMessage(w, http.StatusBadGateway, err.Error())
			return
		}
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
