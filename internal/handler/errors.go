package handler

import (
	"errors"
	"net/http"

	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(ctx *gin.Context, err error) {
	var notFound *service.NotFoundError
	var validation *service.ValidationError
	var stock *service.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		response.Error(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &validation), errors.As(err, &stock):
		response.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrWrongPassword):
		response.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrOrderNotCancellable):
		response.Error(ctx, http.StatusBadRequest, err.Error())
	default:
		response.Error(ctx, http.StatusInternalServerError, err.Error())
	}
}
