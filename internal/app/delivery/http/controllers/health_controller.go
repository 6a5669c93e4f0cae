package controllers

import (
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/responses"
	"creapar-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{
		Status:  constvars.HealthStatusHealthy,
		Message: constvars.HealthCheckMessage,
	})
}
