package routers

import (
	"creapar-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Get("/", slotController.FindAvailable)
	router.Post("/", slotController.CreateSlot)
	router.Delete("/{id}", slotController.DeleteSlot)
}
