package httpadapter

import (
	"net/http"
)

func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	leads, err := h.leads.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *Handler) handleGetLead(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := leadID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.leads.Get(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) handleLeadStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := leadID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var req leadStatusRequest
	if err = h.decode(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.leads.UpdateStatus(r.Context(), userID, id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// handleLeadNotes replaces the lead's notes.
func (h *Handler) handleLeadNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := leadID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var req leadNotesRequest
	if err = h.decode(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.leads.UpdateNotes(r.Context(), userID, id, req.Notes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}
