package routers

import (
	"creapar-service/internal/app/config"
	"creapar-service/internal/app/delivery/http/controllers"
	"creapar-service/internal/app/delivery/http/middlewares"
	"creapar-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	slotController *controllers.SlotController,
	appointmentController *controllers.AppointmentController,
	scheduleController *controllers.ScheduleController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Route(endpointPrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		r.Get("/health", healthController.Health)

		r.Route("/"+constvars.ResourceAvailableSlots, func(r chi.Router) {
			attachSlotRoutes(r, slotController)
		})

		r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		r.Route("/"+constvars.ResourceSchedule, func(r chi.Router) {
			attachScheduleRoutes(r, scheduleController)
		})
	})
}

// endpointPrefix accepts "api", "/api" or "/api/" alike.
func endpointPrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed
}

func allowedOrigins(csv string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(csv, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
