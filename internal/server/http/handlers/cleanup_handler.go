package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/observability"
	"github.com/greenloop/cleanearth/internal/server/http/dto"
	"github.com/greenloop/cleanearth/internal/usecase"
)

// CleanupHandler manages cleanup submission endpoints.
type CleanupHandler struct {
	facade CleanupFacade
}

// NewCleanupHandler constructs CleanupHandler.
func NewCleanupHandler(facade CleanupFacade) *CleanupHandler {
	return &CleanupHandler{facade: facade}
}

// UploadPage handles GET /upload.
func (h *CleanupHandler) UploadPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "upload"})
}

// Upload handles POST /upload with a multipart form carrying the cleanup
// details and both photos.
func (h *CleanupHandler) Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "upload is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid form data"})
		return
	}

	before, closeBefore, err := formPhoto(c, "before_photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded photo"})
		return
	}
	if closeBefore != nil {
		defer closeBefore.Close()
	}

	after, closeAfter, err := formPhoto(c, "after_photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded photo"})
		return
	}
	if closeAfter != nil {
		defer closeAfter.Close()
	}

	submission := usecase.Submission{
		Location:       req.Location,
		WasteCollected: req.WasteCollected,
		WasteKg:        req.WasteKg,
		BeforePhoto:    before,
		AfterPhoto:     after,
	}

	activity, err := h.facade.SubmitCleanup(c.Request.Context(), CurrentUserID(c), submission)
	if err != nil {
		var vErr *domainErrors.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Reason})
		case errors.Is(err, domainErrors.ErrUnsupportedMedia):
			c.JSON(http.StatusUnsupportedMediaType, dto.ErrorResponse{Error: "only png, jpg, jpeg, gif and webp photos are accepted"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not save cleanup, please try again"})
		}
		return
	}

	observability.ObserveSubmission(activity.PointsEarned, activity.WasteKg)
	c.JSON(http.StatusCreated, toActivityResponse(*activity))
}

// formPhoto opens the named multipart file field. A missing field is not an
// error here; the submission layer reports it with a field-specific message.
func formPhoto(c *gin.Context, field string) (*usecase.PhotoUpload, io.Closer, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &usecase.PhotoUpload{Filename: header.Filename, Content: file}, file, nil
}
