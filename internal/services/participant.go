package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alecrity/tough-as-a-tank-final/internal/models"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db *gorm.DB
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{db: db}
}

type RegisterInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

type ScoreResult struct {
	Accepted bool    `json:"accepted"`
	Score    float64 `json:"score"`
}

type LeaderboardEntry struct {
	Position int     `json:"position"`
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Company  string  `json:"company"`
	Score    float64 `json:"score"`
}

type Stats struct {
	ParticipantCount   int64 `json:"participant_count"`
	ScoredParticipants int64 `json:"scored_participants"`
}

// Register creates a new participant. Emails are normalized to lower
// case and must be unique; the unique index on the column backs the
// pre-check up under concurrent registrations.
func (s *ParticipantService) Register(input RegisterInput) (*models.Participant, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	participant := models.Participant{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Company: strings.TrimSpace(input.Company),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Participant{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&participant).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &participant, nil
}

func (s *ParticipantService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Participant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List returns all participants, newest first.
func (s *ParticipantService) List() ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.Order("created_at DESC, id DESC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// UpdateScore records a grip test result. Only a strictly better score
// overwrites the stored one; a non-improving submission leaves the row
// (including updated_at) untouched and reports Accepted=false. The
// guarded UPDATE makes the compare-and-set atomic in the database, so
// concurrent submissions cannot lose the best attempt.
func (s *ParticipantService) UpdateScore(id uint, score float64) (*ScoreResult, error) {
	if score < 0 {
		return nil, ErrInvalidScore
	}

	res := s.db.Model(&models.Participant{}).
		Where("id = ? AND (score IS NULL OR score < ?)", id, score).
		Updates(map[string]interface{}{"score": score, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected > 0 {
		return &ScoreResult{Accepted: true, Score: score}, nil
	}

	var participant models.Participant
	if err := s.db.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	current := 0.0
	if participant.Score != nil {
		current = *participant.Score
	}
	return &ScoreResult{Accepted: false, Score: current}, nil
}

// Leaderboard returns scored participants, best score first. Ties are
// broken by id ascending so repeated calls return the same order.
func (s *ParticipantService) Leaderboard() ([]LeaderboardEntry, error) {
	var participants []models.Participant
	if err := s.db.Where("score IS NOT NULL").
		Order("score DESC, id ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(participants))
	for i, p := range participants {
		entries[i] = LeaderboardEntry{
			Position: i + 1,
			ID:       p.ID,
			Name:     p.Name,
			Company:  p.Company,
			Score:    *p.Score,
		}
	}
	return entries, nil
}

// Delete removes a participant and returns the removed record.
func (s *ParticipantService) Delete(id uint) (*models.Participant, error) {
	var participant models.Participant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&participant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}
			return err
		}
		return tx.Delete(&participant).Error
	})
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// Export returns every participant for the CSV download: scored ones by
// score descending, then unscored ones by name ascending.
func (s *ParticipantService) Export() ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.
		Order("CASE WHEN score IS NULL THEN 1 ELSE 0 END, score DESC, name ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *ParticipantService) Stats() (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&models.Participant{}).Count(&stats.ParticipantCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Participant{}).Where("score IS NOT NULL").Count(&stats.ScoredParticipants).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
