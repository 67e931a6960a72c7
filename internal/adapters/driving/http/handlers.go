package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

func (s *Server) getSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := s.svc.Speakers.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, speaker)
}

func (s *Server) listSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := s.svc.Speakers.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, speakers)
}

func (s *Server) featuredSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := s.svc.Speakers.Featured(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, speakers)
}

func (s *Server) listVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.svc.Videos.ListPublished(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (s *Server) speakerVideos(w http.ResponseWriter, r *http.Request) {
	grouped, err := s.svc.Videos.ForSpeaker(r.Context(), chi.URLParam(r, "speakerSlug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, grouped)
}

func (s *Server) listConsultants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := s.svc.Consultants.List(r.Context(), domain.ConsultantFilter{
		Search:       q.Get("search"),
		Country:      q.Get("country"),
		Availability: q.Get("availability"),
		FeeBand:      q.Get("feeBand"),
		Offset:       q.Get("offset"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) consultantsLanding(w http.ResponseWriter, r *http.Request) {
	landing, err := s.svc.Consultants.Landing(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, landing)
}

func (s *Server) featuredConsultants(w http.ResponseWriter, r *http.Request) {
	featured, err := s.svc.Consultants.Featured(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, featured)
}

func (s *Server) getConsultant(w http.ResponseWriter, r *http.Request) {
	consultant, err := s.svc.Consultants.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, consultant)
}

func (s *Server) academyLanding(w http.ResponseWriter, r *http.Request) {
	landing, err := s.svc.Academy.Landing(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, landing)
}

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.svc.Academy.Courses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.svc.Academy.CourseBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *Server) getMicrosite(w http.ResponseWriter, r *http.Request) {
	site, err := s.svc.Campaigns.Microsite(r.Context(), chi.URLParam(r, "country"), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}
