package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
)

// RespondError maps an error to its HTTP status and a client-safe message.
// Raw internal diagnostics stay in the logs; clients only see the kind.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case apperrors.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found"})
	case apperrors.IsPermissionDenied(err):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
	case apperrors.IsStoreError(err):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Storage unavailable, try again later"})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal error"})
	}
}
