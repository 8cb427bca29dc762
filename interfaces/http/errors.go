package http

import (
	"errors"
	"net/http"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var validation *model.ValidationError
	var upstream *model.UpstreamError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrSuperseded):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	msg := err.Error()
	if msg == "" {
		msg = (&model.UnexpectedError{}).Error()
	}
	ctx.JSON(statusFor(err), dto.ErrorResponse{Error: msg})
}

func requireUser(ctx *gin.Context) (string, bool) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized: missing user_id"})
		return "", false
	}
	return userID, true
}
