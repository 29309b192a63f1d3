package handlers

import (
	"errors"
	"net/http"

	"medonrent/services/apperrors"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer error types to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		stateErr      *apperrors.StateError
		storageErr    *apperrors.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Message, "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Message, "")
	case errors.As(err, &stateErr):
		utils.JSONError(c, http.StatusBadRequest, stateErr.Message, "")
	case errors.As(err, &storageErr):
		details := ""
		if storageErr.Err != nil {
			details = storageErr.Err.Error()
		}
		utils.JSONError(c, http.StatusServiceUnavailable, storageErr.Message, details)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// actorID returns the authenticated user ID set by the auth middleware.
func actorID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
