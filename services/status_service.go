package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"appeals-api/models"
	"appeals-api/repositories"
)

// The four canonical lifecycle states. EnsureStatusesSeeded inserts the
// missing ones at startup; nothing else ever writes this table.
var canonicalStatuses = []models.AppealStatus{
	{Code: models.StatusCodeReceived, Name: "Received", Color: "#2196f3", StatusOrder: 1},
	{Code: models.StatusCodeInProgress, Name: "In progress", Color: "#ff9800", StatusOrder: 2},
	{Code: models.StatusCodeResponded, Name: "Responded", Color: "#4caf50", StatusOrder: 3},
	{Code: models.StatusCodeClosed, Name: "Closed", Color: "#9e9e9e", StatusOrder: 4},
}

type statusCacheEntry struct {
	statuses  []models.AppealStatus
	byCode    map[string]models.AppealStatus
	byID      map[int]models.AppealStatus
	fetchedAt time.Time
}

type StatusService struct {
	repo repositories.StatusRepo

	mu    sync.RWMutex
	cache *statusCacheEntry
	ttl   time.Duration
}

func NewStatusService(repo repositories.StatusRepo) *StatusService {
	return &StatusService{repo: repo, ttl: 5 * time.Minute}
}

// EnsureStatusesSeeded inserts any canonical status row that does not
// exist yet. Safe to call on every process start.
func (s *StatusService) EnsureStatusesSeeded() error {
	for _, canonical := range canonicalStatuses {
		_, err := s.repo.FindByCode(canonical.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up status %q: %w", canonical.Code, err)
		}
		status := canonical
		if err := s.repo.Create(&status); err != nil {
			return fmt.Errorf("failed to seed status %q: %w", canonical.Code, err)
		}
	}
	s.ClearCache()
	return nil
}

func (s *StatusService) load(force bool) (*statusCacheEntry, error) {
	s.mu.RLock()
	cached := s.cache
	s.mu.RUnlock()

	if cached != nil && !force && time.Since(cached.fetchedAt) < s.ttl {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil && !force && time.Since(s.cache.fetchedAt) < s.ttl {
		return s.cache, nil
	}

	rows, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load appeal statuses: %w", err)
	}

	byCode := make(map[string]models.AppealStatus, len(rows))
	byID := make(map[int]models.AppealStatus, len(rows))
	for _, status := range rows {
		byCode[status.Code] = status
		byID[status.StatusID] = status
	}

	entry := &statusCacheEntry{
		statuses:  rows,
		byCode:    byCode,
		byID:      byID,
		fetchedAt: time.Now(),
	}
	s.cache = entry
	return entry, nil
}

// ClearCache invalidates the in-memory status cache.
func (s *StatusService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}

// GetStatuses returns all statuses ordered by status_order ascending.
func (s *StatusService) GetStatuses() ([]models.AppealStatus, error) {
	entry, err := s.load(false)
	if err != nil {
		return nil, err
	}
	return entry.statuses, nil
}

// GetStatusByCode resolves a canonical code to its row. A miss forces one
// cache refresh before giving up.
func (s *StatusService) GetStatusByCode(code string) (*models.AppealStatus, error) {
	entry, err := s.load(false)
	if err != nil {
		return nil, err
	}
	if status, ok := entry.byCode[code]; ok {
		return &status, nil
	}

	entry, err = s.load(true)
	if err != nil {
		return nil, err
	}
	if status, ok := entry.byCode[code]; ok {
		return &status, nil
	}

	return nil, fmt.Errorf("status %q: %w", code, ErrStatusNotFound)
}

// GetStatusByID resolves a status id, refreshing the cache once on a miss.
func (s *StatusService) GetStatusByID(id int) (*models.AppealStatus, error) {
	entry, err := s.load(false)
	if err != nil {
		return nil, err
	}
	if status, ok := entry.byID[id]; ok {
		return &status, nil
	}

	entry, err = s.load(true)
	if err != nil {
		return nil, err
	}
	if status, ok := entry.byID[id]; ok {
		return &status, nil
	}

	return nil, fmt.Errorf("status id %d: %w", id, ErrStatusNotFound)
}
