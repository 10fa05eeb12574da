package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/middleware"
)

// parseIDParam reads a positive integer path parameter, writing a 400 when it is not one
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.RespondWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)
		return 0, false
	}
	return id, true
}
