package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/server/http/dto"
)

// PhotoResolver maps stored photo names to filesystem paths.
type PhotoResolver interface {
	Path(role model.PhotoRole, name string) (string, error)
}

// PhotoHandler serves stored cleanup photos.
type PhotoHandler struct {
	photos PhotoResolver
}

// NewPhotoHandler constructs PhotoHandler.
func NewPhotoHandler(photos PhotoResolver) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// Serve handles GET /uploads/:role/:filename.
func (h *PhotoHandler) Serve(c *gin.Context) {
	role := model.PhotoRole(c.Param("role"))
	path, err := h.photos.Path(role, c.Param("filename"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not read photo"})
		return
	}

	c.File(path)
}
