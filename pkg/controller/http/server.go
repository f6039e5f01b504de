package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/secmon-lab/constrisk/pkg/utils/safe"
)

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 64 << 10

// PredictionUseCase is the scoring surface needed by the HTTP layer
type PredictionUseCase interface {
	Predict(ctx context.Context, input model.PredictionInput) (*model.Assessment, error)
	Options(ctx context.Context) model.PredictionOptions
	Reject(ctx context.Context, err error)
}

// ContactUseCase accepts contact form submissions
type ContactUseCase interface {
	Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactReceipt, error)
}

type Server struct {
	router         *chi.Mux
	prediction     PredictionUseCase
	contact        ContactUseCase
	metricsHandler http.Handler
}

type Options func(*Server)

func WithContact(uc ContactUseCase) Options {
	return func(s *Server) {
		s.contact = uc
	}
}

func WithMetrics(handler http.Handler) Options {
	return func(s *Server) {
		s.metricsHandler = handler
	}
}

func New(prediction PredictionUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:     r,
		prediction: prediction,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/predict", func(r chi.Router) {
			r.Post("/", predictHandler(s.prediction))
			r.Get("/options", predictOptionsHandler(s.prediction))
		})

		if s.contact != nil {
			r.Post("/contact", contactHandler(s.contact))
		}
	})

	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.From(ctx).Error("failed to marshal response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}
