package rest

import (
	"context"
	"net/http"

	core_port "brokerage-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	corsAllowedOrigins []string,
	clientsHandler *ClientsHandler,
	realtorsHandler *RealtorsHandler,
	propertiesHandler *PropertiesHandler,
	offersHandler *OffersHandler,
	needsHandler *NeedsHandler,
	dealsHandler *DealsHandler,
	eventsHandler *EventsHandler,
	searchHandler *SearchHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", clientsHandler.List)
			r.Post("/", clientsHandler.Create)
			r.Get("/{clientID}", clientsHandler.GetDetails)
			r.Delete("/{clientID}", clientsHandler.Delete)
		})

		r.Route("/realtors", func(r chi.Router) {
			r.Get("/", realtorsHandler.List)
			r.Post("/", realtorsHandler.Create)
			r.Get("/{realtorID}", realtorsHandler.GetDetails)
			r.Delete("/{realtorID}", realtorsHandler.Delete)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertiesHandler.Find)
			r.Post("/", propertiesHandler.Create)
			r.Get("/{propertyID}", propertiesHandler.GetDetails)
			r.Delete("/{propertyID}", propertiesHandler.Delete)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", offersHandler.List)
			r.Post("/", offersHandler.Create)
			r.Get("/{offerID}", offersHandler.GetDetails)
			r.Delete("/{offerID}", offersHandler.Delete)
		})

		r.Route("/needs", func(r chi.Router) {
			r.Get("/", needsHandler.List)
			r.Post("/", needsHandler.Create)
			r.Get("/{needID}", needsHandler.GetDetails)
			r.Delete("/{needID}", needsHandler.Delete)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", dealsHandler.List)
			r.Post("/", dealsHandler.Create)
			r.Get("/{dealID}", dealsHandler.GetDetails)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventsHandler.List)
			r.Post("/", eventsHandler.Create)
		})

		r.Get("/search", searchHandler.Search)
		r.Get("/dashboard/stats", searchHandler.GetDashboardStats)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
