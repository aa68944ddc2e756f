package httpadapter

import (
	"net/http"

	"adfleet/internal/core/domain"
)

func (h *Handler) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	conns, err := h.connections.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views := make([]connectionView, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		conn, ok := conns[p]
		views = append(views, newConnectionView(p, conn, ok))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	p := platformParam(r)

	var req connectRequest
	if err := h.decode(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.connections.Connect(r.Context(), userID, p, req.AuthCode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := connectionView{
		Platform:    p,
		Connected:   true,
		AccountID:   res.Credentials.AccountID,
		AccountName: res.AccountName,
	}
	if exp := res.Credentials.Expiry; !exp.IsZero() {
		view.ExpiresAt = &exp
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	p := platformParam(r)

	if err := h.connections.Disconnect(r.Context(), userID, p); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, connectionView{Platform: p})
}
