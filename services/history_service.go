package services

import (
	"time"

	"guessdle/models"
	"guessdle/scoring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryService records completed plays: the caller's per-game statistics
// and the game's play counters.
type HistoryService struct {
	db    *gorm.DB
	games *GameService
}

func NewHistoryService(db *gorm.DB, games *GameService) *HistoryService {
	return &HistoryService{db: db, games: games}
}

type RecordPlayRequest struct {
	GameID    string   `json:"game_id" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Won       *bool    `json:"won" binding:"required"`
	TimeTaken *float64 `json:"time_taken" binding:"required"`
}

// RecordPlay applies one completed play. The history row is upserted with
// SQL-side arithmetic so concurrent plays by the same user cannot lose
// updates, and the game counters are bumped the same way.
func (s *HistoryService) RecordPlay(userID uint, req *RecordPlayRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	game, err := s.games.GetGameByID(req.GameID)
	if err != nil {
		return err
	}

	won := *req.Won
	timeTaken := *req.TimeTaken

	entry := scoring.ApplyPlay(nil, game.ID, req.Name, won, timeTaken)
	entry.UserID = userID

	winIncrement := 0
	if won {
		winIncrement = 1
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"game_name":    req.Name,
			"num_plays":    gorm.Expr("user_game_histories.num_plays + 1"),
			"num_wins":     gorm.Expr("user_game_histories.num_wins + ?", winIncrement),
			"fastest_time": gorm.Expr("LEAST(user_game_histories.fastest_time, ?)", timeTaken),
			"updated_at":   time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return err
	}

	// Play counters move only on completed games, never on abandoned ones.
	err = s.db.Model(&models.Game{}).Where("id = ?", game.ID).
		Updates(map[string]interface{}{
			"daily_plays": gorm.Expr("daily_plays + 1"),
			"total_plays": gorm.Expr("total_plays + 1"),
		}).Error
	if err != nil {
		return err
	}

	s.games.invalidateCache(game.ID)
	return nil
}

// GetUserHistory returns the caller's per-game entries, most recently played
// first.
func (s *HistoryService) GetUserHistory(userID uint) ([]models.UserGameHistory, error) {
	var entries []models.UserGameHistory
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&entries).Error
	return entries, err
}
