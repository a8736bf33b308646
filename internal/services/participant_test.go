package services

import (
	"testing"

	"github.com/Alecrity/tough-as-a-tank-final/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *ParticipantService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Participant{}))
	return NewParticipantService(db)
}

func register(t *testing.T, s *ParticipantService, name, email string) *models.Participant {
	t.Helper()
	p, err := s.Register(RegisterInput{Name: name, Email: email, Phone: "555", Company: "Acme"})
	require.NoError(t, err)
	return p
}

func TestRegisterAssignsIncreasingIDs(t *testing.T) {
	s := newTestService(t)

	a := register(t, s, "Alice", "a@x.com")
	b := register(t, s, "Bob", "b@x.com")
	c := register(t, s, "Carol", "c@x.com")

	assert.Greater(t, b.ID, a.ID)
	assert.Greater(t, c.ID, b.ID)
	assert.Nil(t, a.Score)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.UpdatedAt.IsZero())
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	s := newTestService(t)

	_, err := s.Register(RegisterInput{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = s.Register(RegisterInput{Name: "Alice"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = s.Register(RegisterInput{Name: "   ", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrNameRequired)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	s := newTestService(t)

	register(t, s, "Alice", "Alice@Example.COM")

	_, err := s.Register(RegisterInput{Name: "Imposter", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.Register(RegisterInput{Name: "Imposter", Email: "  ALICE@EXAMPLE.com "})
	assert.ErrorIs(t, err, ErrEmailTaken)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice@example.com", list[0].Email)
}

func TestUpdateScoreKeepsMaximum(t *testing.T) {
	s := newTestService(t)
	p := register(t, s, "Alice", "a@x.com")

	res, err := s.UpdateScore(p.ID, 50)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 50.0, res.Score)

	res, err = s.UpdateScore(p.ID, 30)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 50.0, res.Score)

	res, err = s.UpdateScore(p.ID, 75)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 75.0, res.Score)

	// Equal score is not an improvement either.
	res, err = s.UpdateScore(p.ID, 75)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 75.0, res.Score)
}

func TestUpdateScoreRejectionLeavesRecordUntouched(t *testing.T) {
	s := newTestService(t)
	p := register(t, s, "Alice", "a@x.com")

	_, err := s.UpdateScore(p.ID, 60)
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	updatedAt := list[0].UpdatedAt

	res, err := s.UpdateScore(p.ID, 10)
	require.NoError(t, err)
	assert.False(t, res.Accepted)

	list, err = s.List()
	require.NoError(t, err)
	require.NotNil(t, list[0].Score)
	assert.Equal(t, 60.0, *list[0].Score)
	assert.Equal(t, updatedAt, list[0].UpdatedAt)
}

func TestUpdateScoreValidation(t *testing.T) {
	s := newTestService(t)
	p := register(t, s, "Alice", "a@x.com")

	_, err := s.UpdateScore(p.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = s.UpdateScore(p.ID+100, 50)
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	list, err := s.List()
	require.NoError(t, err)
	assert.Nil(t, list[0].Score)
}

func TestLeaderboardOrderingAndTieBreak(t *testing.T) {
	s := newTestService(t)

	a := register(t, s, "Alice", "a@x.com")
	b := register(t, s, "Bob", "b@x.com")
	c := register(t, s, "Carol", "c@x.com")
	register(t, s, "Dave", "d@x.com") // never scored

	_, err := s.UpdateScore(a.ID, 40)
	require.NoError(t, err)
	_, err = s.UpdateScore(b.ID, 90)
	require.NoError(t, err)
	_, err = s.UpdateScore(c.ID, 40)
	require.NoError(t, err)

	entries, err := s.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, 1, entries[0].Position)
	// Tie at 40 resolves by id ascending.
	assert.Equal(t, a.ID, entries[1].ID)
	assert.Equal(t, c.ID, entries[2].ID)

	again, err := s.Leaderboard()
	require.NoError(t, err)
	assert.Equal(t, entries, again)
}

func TestLeaderboardExample(t *testing.T) {
	s := newTestService(t)

	p, err := s.Register(RegisterInput{Name: "Alice", Email: "a@x.com", Phone: "555", Company: "Acme"})
	require.NoError(t, err)
	assert.Nil(t, p.Score)

	res, err := s.UpdateScore(p.ID, 50)
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	res, err = s.UpdateScore(p.ID, 30)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 50.0, res.Score)

	res, err = s.UpdateScore(p.ID, 75)
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	entries, err := s.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, p.ID, entries[0].ID)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Acme", entries[0].Company)
	assert.Equal(t, 75.0, entries[0].Score)
}

func TestDeleteRemovesParticipant(t *testing.T) {
	s := newTestService(t)

	a := register(t, s, "Alice", "a@x.com")
	b := register(t, s, "Bob", "b@x.com")
	_, err := s.UpdateScore(a.ID, 50)
	require.NoError(t, err)

	removed, err := s.Delete(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, removed.ID)
	assert.Equal(t, "Alice", removed.Name)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	entries, err := s.Leaderboard()
	require.NoError(t, err)
	assert.Empty(t, entries)

	exported, err := s.Export()
	require.NoError(t, err)
	require.Len(t, exported, 1)
	assert.Equal(t, b.ID, exported[0].ID)

	_, err = s.Delete(a.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestExportOrdering(t *testing.T) {
	s := newTestService(t)

	zed := register(t, s, "Zed", "z@x.com")
	amy := register(t, s, "Amy", "amy@x.com")
	low := register(t, s, "Lois", "lois@x.com")
	high := register(t, s, "Hank", "hank@x.com")

	_, err := s.UpdateScore(low.ID, 20)
	require.NoError(t, err)
	_, err = s.UpdateScore(high.ID, 80)
	require.NoError(t, err)

	exported, err := s.Export()
	require.NoError(t, err)
	require.Len(t, exported, 4)

	assert.Equal(t, high.ID, exported[0].ID)
	assert.Equal(t, low.ID, exported[1].ID)
	assert.Equal(t, amy.ID, exported[2].ID)
	assert.Equal(t, zed.ID, exported[3].ID)
}

func TestStats(t *testing.T) {
	s := newTestService(t)

	a := register(t, s, "Alice", "a@x.com")
	register(t, s, "Bob", "b@x.com")
	_, err := s.UpdateScore(a.ID, 42)
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ParticipantCount)
	assert.Equal(t, int64(1), stats.ScoredParticipants)
}
