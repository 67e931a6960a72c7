package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
)

// maxBodyBytes bounds lead form bodies.
const maxBodyBytes = 1 << 20

// Services are the driving ports the HTTP surface serves.
type Services struct {
	Speakers    driving.SpeakerService
	Videos      driving.VideoService
	Consultants driving.ConsultantService
	Academy     driving.AcademyService
	Campaigns   driving.CampaignService
	Leads       driving.LeadService
}

// Server holds the handlers of the HTTP surface.
type Server struct {
	svc      Services
	gatherer prometheus.Gatherer
	metrics  *httpMetrics
}

// New creates a server. Metrics are registered on reg and served from
// gatherer; a nil reg falls back to the default registry.
func New(svc Services, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Server{
		svc:      svc,
		gatherer: gatherer,
		metrics:  newHTTPMetrics(reg),
	}
}

// Routes returns a chi.Router with every route mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/speakers", s.listSpeakers)
		r.Get("/speakers/featured", s.featuredSpeakers)
		r.Get("/speakers/{slug}", s.getSpeaker)

		r.Get("/videos", s.listVideos)
		r.Get("/videos/{speakerSlug}", s.speakerVideos)

		r.Route("/consultants", func(r chi.Router) {
			r.Get("/", s.listConsultants)
			r.Get("/landing", s.consultantsLanding)
			r.Get("/featured", s.featuredConsultants)
			r.Get("/{slug}", s.getConsultant)
		})

		r.Route("/academy", func(r chi.Router) {
			r.Get("/", s.academyLanding)
			r.Get("/courses", s.listCourses)
			r.Get("/courses/{slug}", s.getCourse)
		})

		r.Get("/campaigns/{country}/{slug}", s.getMicrosite)

		r.Route("/leads", func(r chi.Router) {
			r.Post("/booking", s.submitBooking)
			r.Post("/consultants", s.submitApplication)
			r.Post("/consultants/drafts", s.createDraft)
			r.Put("/consultants/drafts/{id}", s.saveDraft)
			r.Get("/consultants/drafts/{id}", s.getDraft)
			r.Delete("/consultants/drafts/{id}", s.deleteDraft)
		})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
