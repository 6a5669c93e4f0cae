package routers

import (
	"creapar-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.BookSlot)
	router.Get("/{id}", appointmentController.FindByID)
	router.Put("/{id}/cancel", appointmentController.CancelAppointment)
}
