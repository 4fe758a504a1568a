package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/models"
	"github.com/axellelanca/portfolio/internal/repository"
	"github.com/axellelanca/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

type fixture struct {
	db       *gorm.DB
	clicks   *ClickService
	contacts *ContactService
	content  *ContentService
	projects *ProjectService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	log := zap.NewNop()
	projectRepo := repository.NewProjectRepository(db)

	f := &fixture{
		db:       db,
		clicks:   NewClickService(repository.NewClickRepository(db), projectRepo, log),
		contacts: NewContactService(repository.NewContactRepository(db), log),
		content:  NewContentService(repository.NewContentRepository(db), projectRepo),
		projects: NewProjectService(projectRepo, log),
	}
	f.clicks.now = func() time.Time { return fixedNow }
	f.contacts.now = func() time.Time { return fixedNow }
	return f
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (f *fixture) countClicks(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.ClickEvent{}).Count(&n).Error)
	return n
}

func TestTrack_ResolvesExistingProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.CreateProject(ctx, NewProject{Title: "Portfolio"})
	require.NoError(t, err)
	id := p.ID

	event, err := f.clicks.Track(ctx, TrackRequest{
		Action:    "PROJECT_GITHUB",
		Details:   idString(id),
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)

	var stored models.ClickEvent
	require.NoError(t, f.db.First(&stored, event.ID).Error)
	require.NotNil(t, stored.ProjectID)
	assert.Equal(t, id, *stored.ProjectID)
	require.NotNil(t, stored.Details)
	assert.Equal(t, "Project ID: "+idString(id), *stored.Details)
	assert.Equal(t, models.ActionProjectGitHub, stored.ActionType)
	assert.Equal(t, "203.0.113.7", *stored.IPAddress)
	assert.Equal(t, "Mozilla/5.0", *stored.UserAgent)
	assert.True(t, stored.Timestamp.Equal(fixedNow))
	assert.EqualValues(t, 1, f.countClicks(t))
}

func TestTrack_UnknownProjectKeepsRawDetails(t *testing.T) {
	f := newFixture(t)

	event, err := f.clicks.Track(context.Background(), TrackRequest{Action: "PROJECT_GITHUB", Details: "999999"})
	require.NoError(t, err)

	assert.Nil(t, event.ProjectID)
	require.NotNil(t, event.Details)
	assert.Equal(t, "999999", *event.Details)
	assert.EqualValues(t, 1, f.countClicks(t))
}

func TestTrack_UnparseableProjectID(t *testing.T) {
	f := newFixture(t)

	for _, raw := range []string{"abc", "-3", "0", "1.5"} {
		event, err := f.clicks.Track(context.Background(), TrackRequest{Action: "PROJECT_LIVE_DEMO", Details: raw})
		require.NoError(t, err, raw)
		assert.Nil(t, event.ProjectID, raw)
		require.NotNil(t, event.Details, raw)
		assert.Equal(t, raw, *event.Details)
	}
	assert.EqualValues(t, 4, f.countClicks(t))
}

func TestTrack_PlainActionIgnoresProjectResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.CreateProject(ctx, NewProject{Title: "Portfolio"})
	require.NoError(t, err)

	event, err := f.clicks.Track(ctx, TrackRequest{Action: "RESUME_DOWNLOAD", Details: idString(p.ID)})
	require.NoError(t, err)
	assert.Nil(t, event.ProjectID)
	require.NotNil(t, event.Details)
	assert.Equal(t, idString(p.ID), *event.Details)
}

func TestTrack_MissingActionWritesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.clicks.Track(context.Background(), TrackRequest{Details: "12"})
	assert.ErrorIs(t, err, apperrors.ErrMissingAction)
	assert.Zero(t, f.countClicks(t))
}

func TestTrack_UnknownActionIsRecordedVerbatim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, kind := range []string{"PAGE_VIEW", "email_click", " "} {
		event, err := f.clicks.Track(ctx, TrackRequest{Action: kind, Details: "7"})
		require.NoError(t, err, kind)

		var stored models.ClickEvent
		require.NoError(t, f.db.First(&stored, event.ID).Error)
		assert.Equal(t, models.ActionKind(kind), stored.ActionType)
		assert.Nil(t, stored.ProjectID)
		require.NotNil(t, stored.Details)
		assert.Equal(t, "7", *stored.Details)
	}
	assert.EqualValues(t, 3, f.countClicks(t))
}

func TestTrack_EmptyOptionalFieldsStayNull(t *testing.T) {
	f := newFixture(t)

	event, err := f.clicks.Track(context.Background(), TrackRequest{Action: "EMAIL_CLICK"})
	require.NoError(t, err)
	assert.Nil(t, event.IPAddress)
	assert.Nil(t, event.UserAgent)
	assert.Nil(t, event.Details)
	assert.Nil(t, event.ProjectID)
}

var errDiskFull = errors.New("disk full")

type failingClickRepo struct {
	repository.ClickRepository
}

func (failingClickRepo) CreateClick(context.Context, *models.ClickEvent) error {
	return errDiskFull
}

type failingProjectRepo struct {
	repository.ProjectRepository
}

func (failingProjectRepo) GetProjectByID(context.Context, uint) (*models.Project, error) {
	return nil, errors.New("connection refused")
}

func TestTrack_StorageFailureIsReported(t *testing.T) {
	svc := NewClickService(failingClickRepo{}, failingProjectRepo{}, zap.NewNop())

	_, err := svc.Track(context.Background(), TrackRequest{Action: "PROJECT_GITHUB", Details: "5"})
	var recErr apperrors.ErrClickRecordingFailed
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "PROJECT_GITHUB", recErr.Action)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestClickStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.CreateProject(ctx, NewProject{Title: "Portfolio"})
	require.NoError(t, err)
	for _, req := range []TrackRequest{
		{Action: "PROJECT_GITHUB", Details: idString(p.ID)},
		{Action: "PROJECT_LIVE_DEMO", Details: idString(p.ID)},
		{Action: "EMAIL_CLICK"},
	} {
		_, err := f.clicks.Track(ctx, req)
		require.NoError(t, err)
	}

	stats, err := f.clicks.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.Equal(t, []models.ActionCount{
		{ActionType: models.ActionResumeDownload, Total: 0},
		{ActionType: models.ActionProjectLiveDemo, Total: 1},
		{ActionType: models.ActionProjectGitHub, Total: 1},
		{ActionType: models.ActionEmailClick, Total: 1},
	}, stats.ByAction)
	require.Len(t, stats.ByProject, 1)
	assert.EqualValues(t, 2, stats.ByProject[0].Total)

	recent, err := f.clicks.RecentClicks(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestClickStats_UnknownKindsFollowKnownOnes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, kind := range []string{"PAGE_VIEW", "EMAIL_CLICK", "PAGE_VIEW"} {
		_, err := f.clicks.Track(ctx, TrackRequest{Action: kind})
		require.NoError(t, err)
	}

	stats, err := f.clicks.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	require.Len(t, stats.ByAction, 5)
	assert.Equal(t, models.ActionCount{ActionType: models.ActionEmailClick, Total: 1}, stats.ByAction[3])
	assert.Equal(t, models.ActionCount{ActionType: "PAGE_VIEW", Total: 2}, stats.ByAction[4])
}

func TestContactSubmit_Valid(t *testing.T) {
	f := newFixture(t)

	sub, err := f.contacts.Submit(context.Background(), ContactForm{
		Name:    "  Ada  ",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's work together.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", sub.Name)

	var rows []models.ContactSubmission
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Timestamp.Equal(fixedNow))
	assert.Equal(t, "ada@example.com", rows[0].Email)
}

func TestContactSubmit_InvalidStoresNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.contacts.Submit(context.Background(), ContactForm{
		Name:    "Ada",
		Email:   "not-an-email",
		Subject: "   ",
		Message: "Hi",
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Enter a valid email address.", verr.Fields["email"])
	assert.Equal(t, "This field is required.", verr.Fields["subject"])
	assert.False(t, verr.Has("name"))
	assert.False(t, verr.Has("message"))

	var n int64
	require.NoError(t, f.db.Model(&models.ContactSubmission{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestContactSubmit_MaxLength(t *testing.T) {
	f := newFixture(t)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err := f.contacts.Submit(context.Background(), ContactForm{
		Name: string(long), Email: "a@example.com", Subject: "s", Message: "m",
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Ensure this value has at most 100 characters.", verr.Fields["name"])
}

func TestSnapshot_EmptyStoreUsesDefaults(t *testing.T) {
	f := newFixture(t)

	snap, err := f.content.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultGeneralInfo(), snap.Info)
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.SkillCategories)
}

func TestSnapshot_ExpandsRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&models.SkillCategory{Name: "Frontend", Skills: []models.Skill{{Name: "CSS"}}}).Error)
	_, err := f.projects.CreateProject(ctx, NewProject{
		Title:      "Shop",
		Categories: []string{"E-commerce", " "},
		Tags:       []string{"go", "htmx"},
	})
	require.NoError(t, err)

	info := models.DefaultGeneralInfo()
	info.Name = "Ada"
	require.NoError(t, f.content.SaveGeneralInfo(ctx, &info))

	snap, err := f.content.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", snap.Info.Name)
	require.Len(t, snap.SkillCategories, 1)
	assert.Len(t, snap.SkillCategories[0].Skills, 1)
	require.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Projects[0].Categories, 1)
	assert.Len(t, snap.Projects[0].Tags, 2)
	require.Len(t, snap.ProjectCategories, 1)
	assert.Equal(t, "e-commerce", snap.ProjectCategories[0].Slug)
}

func TestProjectService_DeleteKeepsClicks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.CreateProject(ctx, NewProject{Title: "Gone"})
	require.NoError(t, err)
	_, err = f.clicks.Track(ctx, TrackRequest{Action: "PROJECT_GITHUB", Details: idString(p.ID)})
	require.NoError(t, err)

	require.NoError(t, f.projects.DeleteProject(ctx, p.ID))
	assert.EqualValues(t, 1, f.countClicks(t))

	list, err := f.projects.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactListSubmissions_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i, name := range []string{"First", "Second"} {
		at := fixedNow.Add(time.Duration(i) * time.Hour)
		f.contacts.now = func() time.Time { return at }
		_, err := f.contacts.Submit(ctx, ContactForm{Name: name, Email: "x@example.com", Subject: "Hi", Message: "Hello"})
		require.NoError(t, err)
	}

	subs, err := f.contacts.ListSubmissions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Second", subs[0].Name)
	assert.Equal(t, "First", subs[1].Name)
}
