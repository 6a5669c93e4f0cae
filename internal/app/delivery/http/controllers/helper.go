package controllers

import (
	"context"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const handlerTimeout = constvars.HandlerTimeoutInSeconds * time.Second

// buildUsecaseErrorResponse reports an exhausted handler deadline as 504 and
// anything else as the usecase classified it.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
