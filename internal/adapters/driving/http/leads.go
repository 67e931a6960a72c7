package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// applicationRequest is a consultant application, optionally submitted from
// a saved draft.
type applicationRequest struct {
	domain.ConsultantApplication
	DraftID string `json:"draftId,omitempty"`
}

func (s *Server) submitBooking(w http.ResponseWriter, r *http.Request) {
	var inquiry domain.BookingInquiry
	if err := decode(w, r, &inquiry); err != nil {
		writeError(w, r, err)
		return
	}
	sub, err := s.svc.Leads.SubmitBooking(r.Context(), inquiry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) submitApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	sub, err := s.svc.Leads.SubmitConsultantApplication(r.Context(), req.ConsultantApplication, req.DraftID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) createDraft(w http.ResponseWriter, r *http.Request) {
	s.storeDraft(w, r, "", http.StatusCreated)
}

func (s *Server) saveDraft(w http.ResponseWriter, r *http.Request) {
	s.storeDraft(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (s *Server) storeDraft(w http.ResponseWriter, r *http.Request, id string, status int) {
	var app domain.ConsultantApplication
	if err := decode(w, r, &app); err != nil {
		writeError(w, r, err)
		return
	}
	draft, err := s.svc.Leads.SaveDraft(r.Context(), domain.ApplicationDraft{ID: id, Application: app})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, status, draft)
}

func (s *Server) getDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.svc.Leads.GetDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (s *Server) deleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Leads.DeleteDraft(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
