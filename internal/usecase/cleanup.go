package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/domain/repository"
)

var allowedPhotoExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// PhotoExtension extracts the lowercase extension of an uploaded filename.
// Returns ErrUnsupportedMedia unless the extension is allowlisted.
func PhotoExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return "", domainErrors.ErrUnsupportedMedia
	}
	return ext, nil
}

// PhotoUpload carries one submitted photo.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// Submission is the validated-input boundary for a cleanup upload.
type Submission struct {
	Location       string
	WasteCollected string
	WasteKg        float64
	BeforePhoto    *PhotoUpload
	AfterPhoto     *PhotoUpload
}

// PhotoStore abstracts photo blob persistence.
type PhotoStore interface {
	Save(role model.PhotoRole, ext string, src io.Reader) (string, error)
}

// CleanupUseCase covers activity submission and listing.
type CleanupUseCase struct {
	activities repository.ActivityRepository
	photos     PhotoStore
	scoring    *ScoringUseCase
}

// NewCleanupUseCase constructs CleanupUseCase.
func NewCleanupUseCase(activities repository.ActivityRepository, photos PhotoStore, scoring *ScoringUseCase) *CleanupUseCase {
	return &CleanupUseCase{activities: activities, photos: photos, scoring: scoring}
}

// Submit validates a cleanup submission, persists both photos, and records
// the activity together with the owner's stat update in one transaction.
// Photos are written before the database row: a crash in between leaves an
// orphaned file at worst, never a row pointing at a missing photo.
func (u *CleanupUseCase) Submit(ctx context.Context, userID int64, sub Submission) (*model.CleanupActivity, error) {
	location := strings.TrimSpace(sub.Location)
	wasteCollected := strings.TrimSpace(sub.WasteCollected)

	if location == "" || wasteCollected == "" || sub.BeforePhoto == nil || sub.AfterPhoto == nil {
		return nil, domainErrors.NewValidation("please fill all required fields and upload both images")
	}
	if sub.WasteKg <= 0 {
		return nil, domainErrors.NewValidation("waste amount must be greater than zero")
	}

	beforeExt, err := PhotoExtension(sub.BeforePhoto.Filename)
	if err != nil {
		return nil, err
	}
	afterExt, err := PhotoExtension(sub.AfterPhoto.Filename)
	if err != nil {
		return nil, err
	}

	beforeName, err := u.photos.Save(model.PhotoRoleBefore, beforeExt, sub.BeforePhoto.Content)
	if err != nil {
		return nil, err
	}
	afterName, err := u.photos.Save(model.PhotoRoleAfter, afterExt, sub.AfterPhoto.Content)
	if err != nil {
		return nil, err
	}

	activity := &model.CleanupActivity{
		UserID:         userID,
		Location:       location,
		WasteCollected: wasteCollected,
		WasteKg:        sub.WasteKg,
		BeforePhoto:    beforeName,
		AfterPhoto:     afterName,
	}
	activity.PointsEarned = u.scoring.CalculatePoints(activity)

	return u.activities.CreateWithStats(ctx, activity)
}

// RecentByUser returns the user's newest activities, newest first.
func (u *CleanupUseCase) RecentByUser(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error) {
	return u.activities.ListRecentByUser(ctx, userID, limit)
}

// ReferencedPhotos returns the set of stored photo names referenced by any
// activity. Used to distinguish orphaned files in the photo store.
func (u *CleanupUseCase) ReferencedPhotos(ctx context.Context) (map[string]struct{}, error) {
	names, err := u.activities.ListPhotoNames(ctx)
	if err != nil {
		return nil, err
	}
	referenced := make(map[string]struct{}, len(names))
	for _, name := range names {
		referenced[name] = struct{}{}
	}
	return referenced, nil
}
