package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"appeals-api/models"
	"appeals-api/repositories"
	"appeals-api/utils"
)

type CreateAppealInput struct {
	Subject       string
	Message       string
	AttachmentIDs []int
}

type UpdateAppealInput struct {
	StatusID *int
	Response *string
}

// ListFilter narrows List results. Date bounds arrive as points in time
// and are widened to whole-day boundaries before they hit the store.
type ListFilter struct {
	StatusID *int
	DateFrom *time.Time
	DateTo   *time.Time
}

// AppealService is the single authority over the appeal lifecycle. Every
// status transition it applies is paired with exactly one history entry
// in the same transaction; emails and in-app notifications run after the
// commit and never fail the operation.
type AppealService struct {
	repos    *repositories.Repos
	statuses *StatusService
	notifier *NotificationService
}

func NewAppealService(repos *repositories.Repos, statuses *StatusService, notifier *NotificationService) *AppealService {
	return &AppealService{repos: repos, statuses: statuses, notifier: notifier}
}

// Create registers a new appeal owned by creatorID with the initial
// "received" status and its creation history entry. Nothing is persisted
// unless the creator and every attachment resolve.
func (s *AppealService) Create(in CreateAppealInput, creatorID int) (*models.Appeal, error) {
	subject := utils.SanitizeInput(in.Subject)
	message := utils.SanitizeInput(in.Message)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	if _, err := s.repos.User.FindByID(creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", creatorID, ErrUserNotFound)
		}
		return nil, err
	}

	received, err := s.statuses.GetStatusByCode(models.StatusCodeReceived)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatusRegistry, err)
	}

	attachments, err := s.repos.File.ResolveMany(in.AttachmentIDs)
	if err != nil {
		return nil, err
	}
	if len(attachments) != len(in.AttachmentIDs) {
		return nil, fmt.Errorf("%w: requested %d, found %d",
			ErrAttachmentsMissing, len(in.AttachmentIDs), len(attachments))
	}

	appeal := &models.Appeal{
		UserID:      creatorID,
		Subject:     subject,
		Message:     message,
		StatusID:    received.StatusID,
		Attachments: attachments,
	}
	entry := &models.AppealHistory{StatusID: received.StatusID}
	if err := s.repos.Appeal.CreateWithHistory(appeal, entry); err != nil {
		return nil, err
	}

	hydrated, err := s.repos.Appeal.FindByID(appeal.AppealID)
	if err != nil {
		return nil, err
	}

	s.notifier.AppealReceived(hydrated)
	return hydrated, nil
}

// List returns appeals newest first. A non-nil ownerID restricts results
// to that owner; admins pass nil and see everything.
func (s *AppealService) List(ownerID *int, filter ListFilter) ([]models.Appeal, error) {
	repoFilter := repositories.AppealFilter{StatusID: filter.StatusID}
	if filter.DateFrom != nil {
		from := startOfDay(*filter.DateFrom)
		repoFilter.DateFrom = &from
	}
	if filter.DateTo != nil {
		to := endOfDay(*filter.DateTo)
		repoFilter.DateTo = &to
	}
	return s.repos.Appeal.FindAll(ownerID, repoFilter)
}

// Get fetches one appeal. A non-nil ownerID must match the appeal owner.
func (s *AppealService) Get(id int, ownerID *int) (*models.Appeal, error) {
	appeal, err := s.repos.Appeal.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appeal %d: %w", id, ErrAppealNotFound)
		}
		return nil, err
	}
	if ownerID != nil && appeal.UserID != *ownerID {
		return nil, fmt.Errorf("appeal %d: %w", id, ErrForbidden)
	}
	return appeal, nil
}

// Update applies an admin's status and/or response mutation. Recording a
// response without an explicit status choice auto-transitions the appeal
// per the response transition table. When the status changed, the appeal
// save and the history append share one transaction, then the owner is
// notified best-effort.
func (s *AppealService) Update(id int, in UpdateAppealInput, adminID int) (*models.Appeal, error) {
	appeal, err := s.repos.Appeal.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appeal %d: %w", id, ErrAppealNotFound)
		}
		return nil, err
	}

	admin, err := s.repos.User.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", adminID, ErrUserNotFound)
		}
		return nil, err
	}

	statusChanged := false
	var newStatus *models.AppealStatus

	if in.StatusID != nil {
		target, err := s.statuses.GetStatusByID(*in.StatusID)
		if err != nil {
			return nil, err
		}
		if target.StatusID != appeal.StatusID {
			newStatus = target
			statusChanged = true
		}
	}

	if in.Response != nil {
		now := time.Now()
		appeal.Response = in.Response
		appeal.RespondedAt = &now
		appeal.RespondedByID = &admin.UserID

		if in.StatusID == nil {
			if next, ok := NextStatusOnResponse(appeal.Status.Code); ok {
				target, err := s.statuses.GetStatusByCode(next)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrStatusRegistry, err)
				}
				newStatus = target
				statusChanged = true
			}
		}
	}

	if statusChanged {
		appeal.StatusID = newStatus.StatusID
		appeal.Status = *newStatus
		entry := &models.AppealHistory{
			StatusID:    newStatus.StatusID,
			ChangedByID: &admin.UserID,
			Comment:     in.Response,
		}
		if err := s.repos.Appeal.SaveWithHistory(appeal, entry); err != nil {
			return nil, err
		}
	} else {
		if err := s.repos.Appeal.Save(appeal); err != nil {
			return nil, err
		}
	}

	hydrated, err := s.repos.Appeal.FindByID(id)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		s.notifier.AppealStatusChanged(hydrated, in.Response)
	}
	return hydrated, nil
}

// Delete hard-deletes an appeal and its attachment links. History rows
// and file rows stay behind: the audit trail outlives the appeal and
// files belong to the uploads module.
func (s *AppealService) Delete(id int) error {
	appeal, err := s.repos.Appeal.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("appeal %d: %w", id, ErrAppealNotFound)
		}
		return err
	}
	return s.repos.Appeal.Delete(appeal)
}

// History returns the audit trail newest first, ownership-checked the
// same way as Get.
func (s *AppealService) History(id int, ownerID *int) ([]models.AppealHistory, error) {
	if _, err := s.Get(id, ownerID); err != nil {
		return nil, err
	}
	return s.repos.History.ListByAppeal(id)
}

// Statuses is a pass-through to the status registry for UI pickers.
func (s *AppealService) Statuses() ([]models.AppealStatus, error) {
	return s.statuses.GetStatuses()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
