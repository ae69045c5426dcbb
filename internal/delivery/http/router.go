package http

import (
	"net/http"

	"dental-landing/internal/delivery/http/handler"
	"dental-landing/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const carouselPattern = "{carousel:services|testimonials}"

type Router struct {
	router            *mux.Router
	landingHandler    *handler.LandingHandler
	pageHandler       *handler.PageHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	landingHandler *handler.LandingHandler,
	pageHandler *handler.PageHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		landingHandler:    landingHandler,
		pageHandler:       pageHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Region store (read-only)
	api.HandleFunc("/regions", r.landingHandler.ListRegions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{region}", r.landingHandler.GetRegion).Methods(http.MethodGet)

	// View lifecycle
	api.HandleFunc("/views", r.landingHandler.MountView).Methods(http.MethodPost)
	api.HandleFunc("/views/{id}", r.landingHandler.GetView).Methods(http.MethodGet)
	api.HandleFunc("/views/{id}", r.landingHandler.UnmountView).Methods(http.MethodDelete)
	api.HandleFunc("/views/{id}/region", r.landingHandler.SelectRegion).Methods(http.MethodPut)
	api.HandleFunc("/views/{id}/links", r.landingHandler.GetLinks).Methods(http.MethodGet)

	// Carousels
	api.HandleFunc("/views/{id}/"+carouselPattern+"/{direction:next|prev}", r.landingHandler.Move).Methods(http.MethodPost)
	api.HandleFunc("/views/{id}/"+carouselPattern+"/offset", r.landingHandler.Jump).Methods(http.MethodPut)

	// Server-rendered page
	r.router.HandleFunc("/", r.pageHandler.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/region", r.pageHandler.SelectRegion).Methods(http.MethodPost)
	r.router.HandleFunc("/"+carouselPattern+"/{direction:next|prev}", r.pageHandler.Move).Methods(http.MethodPost)
	r.router.HandleFunc("/"+carouselPattern+"/jump", r.pageHandler.Jump).Methods(http.MethodPost)
	r.router.HandleFunc("/book", r.pageHandler.Book).Methods(http.MethodGet)
	r.router.HandleFunc("/follow", r.pageHandler.Follow).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
