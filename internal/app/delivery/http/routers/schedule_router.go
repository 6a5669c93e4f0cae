package routers

import (
	"creapar-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Post("/bulk-create", scheduleController.BulkCreate)
}
