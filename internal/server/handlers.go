package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/s2hstudio/insta-widget-backend/internal/domain"
	"github.com/s2hstudio/insta-widget-backend/internal/widget"
	apperrors "github.com/s2hstudio/insta-widget-backend/pkg/errors"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"github.com/s2hstudio/insta-widget-backend/web"
)

type Handler struct {
	widget widget.Service
	logger logger.Logger
}

func NewHandler(widgetSvc widget.Service, log logger.Logger) *Handler {
	return &Handler{
		widget: widgetSvc,
		logger: log.WithComponent("Handler"),
	}
}

// Routes wires the widget endpoints. The embedded display surface is served
// from the root, the JSON API under /api.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/healthz", h.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/posts", h.Posts)

	// assets answer GET/HEAD only, so method mismatches on any path still
	// reach the MethodNotAllowed handler instead of a catch-all 404
	assets := http.FileServerFS(web.Assets())
	r.Get("/*", assets.ServeHTTP)
	r.Head("/*", assets.ServeHTTP)

	return r
}

type postsResponse struct {
	Posts []domain.Post `json:"posts"`
}

type notConfiguredResponse struct {
	NotConfigured bool `json:"notConfigured"`
}

// Posts handles GET /api/posts[?client=<selector>].
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	selector := r.URL.Query().Get("client")

	posts, err := h.widget.PostsFor(r.Context(), selector)
	if err != nil {
		h.logger.Error("Failed to load posts", "client", selector, "error", err)

		switch {
		case apperrors.IsNotConfigured(err):
			observeRequest("not_configured", start)
			respondJSON(w, http.StatusOK, notConfiguredResponse{NotConfigured: true})
		case apperrors.IsMissingConfig(err):
			observeRequest("error", start)
			respondError(w, http.StatusInternalServerError, "Configuração faltando", apperrors.GetDetail(err))
		case apperrors.IsUpstreamQuery(err):
			observeRequest("error", start)
			respondError(w, http.StatusInternalServerError, "Erro ao consultar Notion", apperrors.GetDetail(err))
		default:
			observeRequest("error", start)
			respondError(w, http.StatusInternalServerError, "Erro inesperado ao carregar posts", apperrors.GetDetail(err))
		}
		return
	}

	if posts == nil {
		posts = []domain.Post{}
	}

	observeRequest("success", start)
	respondJSON(w, http.StatusOK, postsResponse{Posts: posts})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Método não permitido", "")
}
