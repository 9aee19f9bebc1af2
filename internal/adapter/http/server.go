package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bnema/vidq/internal/adapter/http/middleware"
)

// Server is the public API served by every worker.
type Server struct {
	router   *mux.Router
	handlers *Handlers
}

func NewServer(videoSvc VideoService, uploadDir string, maxSizeMB int) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		handlers: NewHandlers(videoSvc, uploadDir, maxSizeMB),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/videos", s.handlers.ListVideos()).Methods(http.MethodGet)
	api.HandleFunc("/upload-video", s.handlers.UploadVideo()).Methods(http.MethodPost)
	api.HandleFunc("/video/extract-audio", s.handlers.ExtractAudio()).Methods(http.MethodPatch)
	api.HandleFunc("/video/resize", s.handlers.ResizeVideo()).Methods(http.MethodPut)

	s.router.HandleFunc("/get-video-asset", s.handlers.VideoAsset()).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.SecurityHeaders(s.router).ServeHTTP(w, r)
}
