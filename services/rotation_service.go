package services

import (
	"context"
	"sync"
	"time"

	"guessdle/models"
	"guessdle/scoring"
	"guessdle/utils/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RotationService picks a new correct answer and resets the daily play
// counter for every stored game. Triggered by an external timer; directly
// invocable without it.
type RotationService struct {
	db    *gorm.DB
	redis *redis.Client
	games *GameService
}

func NewRotationService(db *gorm.DB, redis *redis.Client, games *GameService) *RotationService {
	return &RotationService{db: db, redis: redis, games: games}
}

// RotationResult summarizes one batch run. A partial outcome (some games
// rotated, some failed) is a valid, reportable result.
type RotationResult struct {
	Rotated int `json:"rotated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// RotateAll rotates every game independently and concurrently. One game's
// failure never blocks or rolls back another's; per-game errors are logged
// and counted.
func (s *RotationService) RotateAll(ctx context.Context) (*RotationResult, error) {
	var games []models.Game
	if err := s.db.Find(&games).Error; err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result RotationResult
	)

	for i := range games {
		game := &games[i]

		answers := game.AnswerSet()
		if len(answers) == 0 {
			mu.Lock()
			result.Skipped++
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			newKey, _ := scoring.PickAnswer(answers)
			err := s.db.WithContext(ctx).Model(&models.Game{}).
				Where("id = ?", game.ID).
				Updates(map[string]interface{}{
					"correct_answer": newKey,
					"daily_plays":    0,
				}).Error

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Errorf("Failed to rotate game %s: %v", game.ID, err)
				result.Failed++
				return
			}
			result.Rotated++
			s.games.invalidateCache(game.ID)
		}()
	}

	wg.Wait()
	logger.Infof("Rotation finished: %d rotated, %d skipped, %d failed",
		result.Rotated, result.Skipped, result.Failed)
	return &result, nil
}

// AcquireTriggerLock dedupes accidental double-fires of the external trigger
// within a short window. Rotation itself is safe to re-run; the lock only
// guards the scheduled path.
func (s *RotationService) AcquireTriggerLock(ctx context.Context) bool {
	ok, err := s.redis.SetNX(ctx, "rotation:trigger", time.Now().Format(time.RFC3339), time.Minute).Result()
	if err != nil {
		// Redis being down should not stop the daily rotation.
		logger.Warnf("Rotation trigger lock unavailable: %v", err)
		return true
	}
	return ok
}
