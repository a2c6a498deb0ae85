package services

import (
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"appeals-api/models"
	"appeals-api/repositories"
)

// In-memory repository fakes. They honor the same contracts as the GORM
// implementations, including gorm.ErrRecordNotFound on misses, so the
// services under test cannot tell the difference.

type fakeStatusRepo struct {
	statuses []models.AppealStatus
	creates  int
	nextID   int
}

func (f *fakeStatusRepo) FindAll() ([]models.AppealStatus, error) {
	out := make([]models.AppealStatus, len(f.statuses))
	copy(out, f.statuses)
	sort.Slice(out, func(i, j int) bool { return out[i].StatusOrder < out[j].StatusOrder })
	return out, nil
}

func (f *fakeStatusRepo) FindByCode(code string) (*models.AppealStatus, error) {
	for _, status := range f.statuses {
		if status.Code == code {
			found := status
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatusRepo) Create(status *models.AppealStatus) error {
	f.nextID++
	status.StatusID = f.nextID
	f.statuses = append(f.statuses, *status)
	f.creates++
	return nil
}

type fakeUserRepo struct {
	users map[int]models.User
}

func (f *fakeUserRepo) FindByID(id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

type fakeFileRepo struct {
	files map[int]models.FileUpload
}

func (f *fakeFileRepo) ResolveMany(ids []int) ([]models.FileUpload, error) {
	resolved := []models.FileUpload{}
	for _, id := range ids {
		if file, ok := f.files[id]; ok {
			resolved = append(resolved, file)
		}
	}
	return resolved, nil
}

type fakeHistoryRepo struct {
	entries []models.AppealHistory
	nextID  int
	lookup  func(statusID int) models.AppealStatus
}

func (f *fakeHistoryRepo) Create(entry *models.AppealHistory) error {
	f.nextID++
	entry.HistoryID = f.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistoryRepo) ListByAppeal(appealID int) ([]models.AppealHistory, error) {
	out := []models.AppealHistory{}
	for i := len(f.entries) - 1; i >= 0; i-- {
		entry := f.entries[i]
		if entry.AppealID != appealID {
			continue
		}
		if f.lookup != nil {
			entry.Status = f.lookup(entry.StatusID)
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeHistoryRepo) forAppeal(appealID int) []models.AppealHistory {
	entries, _ := f.ListByAppeal(appealID)
	return entries
}

type fakeAppealRepo struct {
	appeals  map[int]*models.Appeal
	history  *fakeHistoryRepo
	statuses *fakeStatusRepo
	users    *fakeUserRepo
	nextID   int

	lastOwnerID *int
	lastFilter  repositories.AppealFilter
}

func (f *fakeAppealRepo) CreateWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error {
	f.nextID++
	appeal.AppealID = f.nextID
	if appeal.CreatedAt.IsZero() {
		appeal.CreatedAt = time.Now()
	}
	stored := *appeal
	f.appeals[appeal.AppealID] = &stored
	entry.AppealID = appeal.AppealID
	return f.history.Create(entry)
}

func (f *fakeAppealRepo) SaveWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error {
	stored := *appeal
	f.appeals[appeal.AppealID] = &stored
	entry.AppealID = appeal.AppealID
	return f.history.Create(entry)
}

func (f *fakeAppealRepo) Save(appeal *models.Appeal) error {
	stored := *appeal
	f.appeals[appeal.AppealID] = &stored
	return nil
}

func (f *fakeAppealRepo) FindAll(ownerID *int, filter repositories.AppealFilter) ([]models.Appeal, error) {
	f.lastOwnerID = ownerID
	f.lastFilter = filter

	ids := make([]int, 0, len(f.appeals))
	for id := range f.appeals {
		ids = append(ids, id)
	}
	// Insertion ids are monotonic, so descending id equals newest first.
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	out := []models.Appeal{}
	for _, id := range ids {
		appeal := f.hydrate(f.appeals[id])
		if ownerID != nil && appeal.UserID != *ownerID {
			continue
		}
		if filter.StatusID != nil && appeal.StatusID != *filter.StatusID {
			continue
		}
		if filter.DateFrom != nil && appeal.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && appeal.CreatedAt.After(*filter.DateTo) {
			continue
		}
		out = append(out, *appeal)
	}
	return out, nil
}

func (f *fakeAppealRepo) FindByID(id int) (*models.Appeal, error) {
	appeal, ok := f.appeals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.hydrate(appeal), nil
}

func (f *fakeAppealRepo) Delete(appeal *models.Appeal) error {
	delete(f.appeals, appeal.AppealID)
	return nil
}

func (f *fakeAppealRepo) hydrate(appeal *models.Appeal) *models.Appeal {
	out := *appeal
	for _, status := range f.statuses.statuses {
		if status.StatusID == out.StatusID {
			out.Status = status
		}
	}
	if user, ok := f.users.users[out.UserID]; ok {
		out.User = user
	}
	if out.RespondedByID != nil {
		if user, ok := f.users.users[*out.RespondedByID]; ok {
			responder := user
			out.RespondedBy = &responder
		}
	}
	return &out
}

type fakeNotificationRepo struct {
	rows []models.Notification
	err  error
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *n)
	return nil
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to []string, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: html})
	return nil
}

// appealFixture wires an AppealService over the fakes with the canonical
// statuses seeded and two users: citizen 1 and admin 2.
type appealFixture struct {
	svc      *AppealService
	statuses *fakeStatusRepo
	users    *fakeUserRepo
	files    *fakeFileRepo
	appeals  *fakeAppealRepo
	history  *fakeHistoryRepo
	notes    *fakeNotificationRepo
	mailer   *fakeMailer
}

const (
	testCitizenID = 1
	testAdminID   = 2
	testOtherID   = 3
)

func newAppealFixture(t *testing.T) *appealFixture {
	t.Helper()

	statuses := &fakeStatusRepo{}
	statusSvc := NewStatusService(statuses)
	if err := statusSvc.EnsureStatusesSeeded(); err != nil {
		t.Fatalf("failed to seed statuses: %v", err)
	}

	users := &fakeUserRepo{users: map[int]models.User{
		testCitizenID: {UserID: testCitizenID, FirstName: "Dana", LastName: "Citizen", Email: "dana@example.com", RoleID: models.RoleCitizen},
		testAdminID:   {UserID: testAdminID, FirstName: "Alex", LastName: "Admin", Email: "admin@portal.gov", RoleID: models.RoleAdmin},
		testOtherID:   {UserID: testOtherID, FirstName: "Sam", LastName: "Other", Email: "sam@example.com", RoleID: models.RoleCitizen},
	}}

	files := &fakeFileRepo{files: map[int]models.FileUpload{}}
	history := &fakeHistoryRepo{}
	history.lookup = func(statusID int) models.AppealStatus {
		for _, status := range statuses.statuses {
			if status.StatusID == statusID {
				return status
			}
		}
		return models.AppealStatus{}
	}

	appeals := &fakeAppealRepo{
		appeals:  map[int]*models.Appeal{},
		history:  history,
		statuses: statuses,
		users:    users,
	}

	notes := &fakeNotificationRepo{}
	mailer := &fakeMailer{}

	repos := &repositories.Repos{
		Appeal:       appeals,
		History:      history,
		Status:       statuses,
		User:         users,
		File:         files,
		Notification: notes,
	}

	return &appealFixture{
		svc:      NewAppealService(repos, statusSvc, NewNotificationService(mailer, notes)),
		statuses: statuses,
		users:    users,
		files:    files,
		appeals:  appeals,
		history:  history,
		notes:    notes,
		mailer:   mailer,
	}
}

func (f *appealFixture) statusID(t *testing.T, code string) int {
	t.Helper()
	for _, status := range f.statuses.statuses {
		if status.Code == code {
			return status.StatusID
		}
	}
	t.Fatalf("status %q not seeded", code)
	return 0
}
