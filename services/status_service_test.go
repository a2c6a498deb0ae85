package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appeals-api/models"
)

func TestEnsureStatusesSeeded(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo)

	require.NoError(t, svc.EnsureStatusesSeeded())
	assert.Equal(t, 4, repo.creates)

	// Idempotent: a second run inserts nothing.
	require.NoError(t, svc.EnsureStatusesSeeded())
	assert.Equal(t, 4, repo.creates)

	statuses, err := svc.GetStatuses()
	require.NoError(t, err)
	require.Len(t, statuses, 4)
	assert.Equal(t, models.StatusCodeReceived, statuses[0].Code)
	assert.Equal(t, models.StatusCodeClosed, statuses[3].Code)
}

func TestEnsureStatusesSeededFillsGaps(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo)

	// Pre-existing partial registry.
	require.NoError(t, repo.Create(&models.AppealStatus{Code: models.StatusCodeReceived, Name: "Received", StatusOrder: 1}))
	require.NoError(t, repo.Create(&models.AppealStatus{Code: models.StatusCodeClosed, Name: "Closed", StatusOrder: 4}))
	repo.creates = 0

	require.NoError(t, svc.EnsureStatusesSeeded())
	assert.Equal(t, 2, repo.creates)
	assert.Len(t, repo.statuses, 4)
}

func TestGetStatusByCode(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo)
	require.NoError(t, svc.EnsureStatusesSeeded())

	status, err := svc.GetStatusByCode(models.StatusCodeResponded)
	require.NoError(t, err)
	assert.Equal(t, "Responded", status.Name)

	_, err = svc.GetStatusByCode("escalated")
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestGetStatusByIDRefreshesCacheOnMiss(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo)
	require.NoError(t, svc.EnsureStatusesSeeded())

	// Prime the cache, then add a row behind its back.
	_, err := svc.GetStatuses()
	require.NoError(t, err)

	late := models.AppealStatus{Code: "late", Name: "Late", StatusOrder: 5}
	require.NoError(t, repo.Create(&late))

	status, err := svc.GetStatusByID(late.StatusID)
	require.NoError(t, err)
	assert.Equal(t, "late", status.Code)

	_, err = svc.GetStatusByID(999)
	assert.ErrorIs(t, err, ErrStatusNotFound)
}
