package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pranshu911/jams/internal/dtos"
	"github.com/pranshu911/jams/internal/models"
	"gorm.io/gorm"
)

// ErrSourceUnavailable marks a failed fetch. Callers must treat it as
// "show an error state", never as an empty result.
var ErrSourceUnavailable = errors.New("record source unavailable")

// ApplicationService is the record source: owner-scoped reads and
// mutations over the applications table. Bulk operations take one or
// many ids uniformly and are all-or-nothing.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// ListByOwner returns every application the owner has, archived rows
// included, newest date_applied first.
func (s *ApplicationService) ListByOwner(owner uuid.UUID) ([]models.Application, error) {
	if owner == uuid.Nil {
		return nil, ErrSourceUnavailable
	}
	var apps []models.Application
	err := s.DB.
		Where("user_id = ?", owner).
		Order("date_applied DESC NULLS LAST").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return apps, nil
}

// ListActiveByOwner returns the owner's non-archived applications.
func (s *ApplicationService) ListActiveByOwner(owner uuid.UUID) ([]models.Application, error) {
	return s.listByArchive(owner, false)
}

// ListArchivedByOwner returns the owner's archived applications.
func (s *ApplicationService) ListArchivedByOwner(owner uuid.UUID) ([]models.Application, error) {
	return s.listByArchive(owner, true)
}

func (s *ApplicationService) listByArchive(owner uuid.UUID, archived bool) ([]models.Application, error) {
	if owner == uuid.Nil {
		return nil, ErrSourceUnavailable
	}
	var apps []models.Application
	err := s.DB.
		Where("user_id = ? AND is_archive = ?", owner, archived).
		Order("date_applied DESC NULLS LAST").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return apps, nil
}

// Create inserts a new application for the owner from the validated
// form payload.
func (s *ApplicationService) Create(owner uuid.UUID, req *dtos.CreateApplicationRequest) (*models.Application, error) {
	if owner == uuid.Nil {
		return nil, ErrSourceUnavailable
	}
	date := req.DateApplied
	app := &models.Application{
		UserID:         owner,
		Title:          req.Title,
		Company:        req.Company,
		DateApplied:    &date,
		Status:         req.Status,
		Platform:       req.Platform,
		EmploymentType: req.EmploymentType,
		IsRemote:       req.IsRemote,
		Location:       req.Location,
		Salary:         req.Salary,
		Referral:       req.Referral,
		HRContact:      req.HRContact,
		Description:    req.Description,
		Notes:          req.Notes,
		FollowUp:       req.FollowUp,
	}
	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// BulkUpdate applies one patch to the given ids. A single UPDATE keeps
// the batch all-or-nothing; a partial failure surfaces as one failure.
func (s *ApplicationService) BulkUpdate(owner uuid.UUID, ids []uint, patch dtos.ApplicationPatch) error {
	if owner == uuid.Nil {
		return ErrSourceUnavailable
	}
	updates := patch.Updates()
	if len(ids) == 0 || len(updates) == 0 {
		return nil
	}
	err := s.DB.Model(&models.Application{}).
		Where("user_id = ? AND id IN ?", owner, ids).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("bulk update: %w", err)
	}
	return nil
}

// BulkDelete permanently removes the given ids.
func (s *ApplicationService) BulkDelete(owner uuid.UUID, ids []uint) error {
	if owner == uuid.Nil {
		return ErrSourceUnavailable
	}
	if len(ids) == 0 {
		return nil
	}
	err := s.DB.
		Where("user_id = ? AND id IN ?", owner, ids).
		Delete(&models.Application{}).Error
	if err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	return nil
}

// Archive flags the given ids as archived; they drop out of aggregation
// and the default table but stay in storage.
func (s *ApplicationService) Archive(owner uuid.UUID, ids []uint) error {
	return s.setArchive(owner, ids, true)
}

// Unarchive restores the given ids into the active set.
func (s *ApplicationService) Unarchive(owner uuid.UUID, ids []uint) error {
	return s.setArchive(owner, ids, false)
}

func (s *ApplicationService) setArchive(owner uuid.UUID, ids []uint, archived bool) error {
	flag := archived
	return s.BulkUpdate(owner, ids, dtos.ApplicationPatch{IsArchive: &flag})
}
