package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"adfleet/internal/core/port"
)

type lifecycleFunc func(ctx context.Context, userID, campaignID uuid.UUID) (*port.LifecycleResult, error)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	var req campaignRequest
	if err := h.decode(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.campaigns.Create(r.Context(), userID, req.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var req campaignUpdateRequest
	if err = h.decode(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.campaigns.Update(r.Context(), userID, id, req.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	list, err := h.campaigns.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.campaigns.Get(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.campaigns.Delete(r.Context(), userID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignLeads(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	leads, err := h.campaigns.Leads(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// lifecycle adapts launch, pause, resume and sync. The response always
// carries the full campaign; partial platform failure is reported per slot
// and does not change the status code.
func (h *Handler) lifecycle(fn lifecycleFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserID(r.Context())
		id, err := campaignID(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := fn(r.Context(), userID, id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
