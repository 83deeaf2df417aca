package handlers

import (
	"errors"
	"log"
	"net/http"

	"kyc-service/internal/repository"
	"kyc-service/utils"

	"github.com/gin-gonic/gin"
)

// MapErrorToHTTPStatus translates service-layer failures into the error code
// and HTTP status the client sees. Handlers are the only boundary where this
// happens; anything unrecognized becomes a generic 500.
func MapErrorToHTTPStatus(err error) (string, int) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return "USER_NOT_FOUND", http.StatusNotFound
	case errors.Is(err, repository.ErrDocumentNotFound):
		return "DOCUMENT_NOT_FOUND", http.StatusNotFound
	case errors.Is(err, repository.ErrFaceNotFound):
		return "FACE_NOT_FOUND", http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateAadhaar):
		return "DUPLICATE_AADHAAR", http.StatusConflict
	default:
		return "INTERNAL_ERROR", http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code, status := MapErrorToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Println("internal error:", err)
		c.JSON(status, utils.CreateErrorResponse(code, "Internal server error"))
		return
	}
	c.JSON(status, utils.CreateErrorResponse(code, err.Error()))
}
