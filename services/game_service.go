package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"guessdle/models"
	"guessdle/scoring"
	"guessdle/utils/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrNotOwner          = errors.New("not the game owner")
	ErrGameUnpublished   = errors.New("game is not published")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrAttributeExists   = errors.New("attribute name already in use")
	ErrIconUpload        = errors.New("failed to upload game icon")
)

const gameCacheTTL = 2 * time.Hour

type GameService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewGameService(db *gorm.DB, redis *redis.Client) *GameService {
	return &GameService{db: db, redis: redis}
}

type AttributeInput struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type AnswerInput struct {
	Name       string            `json:"name" binding:"required"`
	Attributes map[string]string `json:"attributes"`
}

type CreateGameRequest struct {
	Name          string           `json:"name" binding:"required"`
	Attributes    []AttributeInput `json:"attributes" binding:"required,min=1,dive"`
	Answers       []AnswerInput    `json:"answers" binding:"required,min=1,dive"`
	CorrectAnswer string           `json:"correct_answer"`
	MaxGuesses    *int             `json:"max_guesses" binding:"omitempty,min=1"`
}

type UpdateGameRequest struct {
	Name          string           `json:"name"`
	Attributes    []AttributeInput `json:"attributes" binding:"omitempty,min=1,dive"`
	Answers       []AnswerInput    `json:"answers" binding:"omitempty,min=1,dive"`
	CorrectAnswer string           `json:"correct_answer"`
	MaxGuesses    *int             `json:"max_guesses" binding:"omitempty,min=1"`
}

func buildAttributes(inputs []AttributeInput) ([]models.AttributeDefinition, error) {
	attrs := make([]models.AttributeDefinition, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if seen[in.Name] {
			return nil, fmt.Errorf("duplicate attribute name %q", in.Name)
		}
		seen[in.Name] = true

		attrType, err := models.ParseAttributeType(in.Type)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, models.AttributeDefinition{Name: in.Name, Type: attrType})
	}
	return attrs, nil
}

func buildAnswers(inputs []AnswerInput) (models.AnswerMap, error) {
	answers := make(models.AnswerMap, len(inputs))
	for _, in := range inputs {
		if _, ok := answers[in.Name]; ok {
			return nil, fmt.Errorf("duplicate answer name %q", in.Name)
		}
		attrs := in.Attributes
		if attrs == nil {
			attrs = map[string]string{}
		}
		answers[in.Name] = models.Answer{Name: in.Name, Attributes: attrs}
	}
	return answers, nil
}

func (s *GameService) CreateGame(ownerID uint, req *CreateGameRequest) (*models.Game, error) {
	attrs, err := buildAttributes(req.Attributes)
	if err != nil {
		return nil, err
	}
	answers, err := buildAnswers(req.Answers)
	if err != nil {
		return nil, err
	}

	correct := req.CorrectAnswer
	if correct == "" {
		// No explicit pick from the author: draw one like the rotation does.
		correct, _ = scoring.PickAnswer(answers)
	} else if _, ok := answers[correct]; !ok {
		return nil, fmt.Errorf("correct_answer %q is not an answer", correct)
	}

	game := models.Game{
		Name:          req.Name,
		OwnerID:       ownerID,
		Attributes:    datatypes.NewJSONType(attrs),
		Answers:       datatypes.NewJSONType(answers),
		CorrectAnswer: correct,
		MaxGuesses:    req.MaxGuesses,
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

func (s *GameService) UpdateGame(gameID string, ownerID uint, req *UpdateGameRequest) (*models.Game, error) {
	game, err := s.getOwnedGame(gameID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		game.Name = req.Name
	}
	if req.Attributes != nil {
		attrs, err := buildAttributes(req.Attributes)
		if err != nil {
			return nil, err
		}
		game.Attributes = datatypes.NewJSONType(attrs)
	}
	if req.Answers != nil {
		answers, err := buildAnswers(req.Answers)
		if err != nil {
			return nil, err
		}
		game.Answers = datatypes.NewJSONType(answers)
	}
	if req.MaxGuesses != nil {
		game.MaxGuesses = req.MaxGuesses
	}

	// Re-validate the correct answer against the (possibly replaced) answer
	// set; re-draw when the old pick no longer exists.
	answers := game.AnswerSet()
	correct := game.CorrectAnswer
	if req.CorrectAnswer != "" {
		correct = req.CorrectAnswer
	}
	if _, ok := answers[correct]; !ok {
		if req.CorrectAnswer != "" {
			return nil, fmt.Errorf("correct_answer %q is not an answer", req.CorrectAnswer)
		}
		correct, _ = scoring.PickAnswer(answers)
	}
	game.CorrectAnswer = correct

	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(gameID)
	return game, nil
}

// RenameAttribute renames a definition and rewrites every answer's value key
// from the old name to the new one in the same write, so no answer is ever
// left referencing a stale attribute name.
func (s *GameService) RenameAttribute(gameID string, ownerID uint, oldName, newName string) (*models.Game, error) {
	game, err := s.getOwnedGame(gameID, ownerID)
	if err != nil {
		return nil, err
	}

	attrs := game.AttributeList()
	found := false
	for i, attr := range attrs {
		if attr.Name == newName {
			return nil, ErrAttributeExists
		}
		if attr.Name == oldName {
			attrs[i].Name = newName
			found = true
		}
	}
	if !found {
		return nil, ErrAttributeNotFound
	}

	answers := game.AnswerSet()
	for key, answer := range answers {
		if value, ok := answer.Attributes[oldName]; ok {
			answer.Attributes[newName] = value
			delete(answer.Attributes, oldName)
			answers[key] = answer
		}
	}

	game.Attributes = datatypes.NewJSONType(attrs)
	game.Answers = datatypes.NewJSONType(answers)

	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(gameID)
	return game, nil
}

func (s *GameService) PublishGame(gameID string, ownerID uint) (*models.Game, error) {
	game, err := s.getOwnedGame(gameID, ownerID)
	if err != nil {
		return nil, err
	}

	if len(game.AnswerSet()) == 0 {
		return nil, errors.New("cannot publish a game without answers")
	}

	game.Published = true
	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(gameID)
	return game, nil
}

// UploadIcon stores a new icon for an owned game. Ownership is verified
// before anything reaches the image host, so a non-owner can never overwrite
// another game's hosted icon.
func (s *GameService) UploadIcon(ctx context.Context, gameID string, ownerID uint, file multipart.File, uploader IconUploader) (*models.Game, error) {
	game, err := s.getOwnedGame(gameID, ownerID)
	if err != nil {
		return nil, err
	}

	iconURL, err := uploader.UploadGameIcon(ctx, file, gameID)
	if err != nil {
		logger.Errorf("Failed to upload icon for game %s: %v", gameID, err)
		return nil, ErrIconUpload
	}

	game.IconURL = iconURL
	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(gameID)
	return game, nil
}

func (s *GameService) DeleteGame(gameID string, ownerID uint) error {
	if _, err := s.getOwnedGame(gameID, ownerID); err != nil {
		return err
	}

	if err := s.db.Delete(&models.Game{}, "id = ?", gameID).Error; err != nil {
		return err
	}

	s.invalidateCache(gameID)
	return nil
}

func (s *GameService) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("published = ?", true).Order("created_at DESC").Find(&games).Error
	return games, err
}

func (s *GameService) SearchGames(query string) ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("published = ? AND name ILIKE ?", true, "%"+query+"%").
		Order("created_at DESC").Find(&games).Error
	return games, err
}

func (s *GameService) ListGamesByOwner(ownerID uint) ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&games).Error
	return games, err
}

// GetGameByID reads through the redis cache; cache misses fall back to the
// database and repopulate the cache.
func (s *GameService) GetGameByID(gameID string) (*models.Game, error) {
	if game := s.getCachedGame(gameID); game != nil {
		return game, nil
	}

	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	s.cacheGame(&game)
	return &game, nil
}

// SubmitGuess scores a guessed answer key against the game's current correct
// answer. Pure computation over the loaded game; counters move only when a
// completed play is recorded.
func (s *GameService) SubmitGuess(gameID, guessedKey string) (*scoring.GuessResult, error) {
	game, err := s.GetGameByID(gameID)
	if err != nil {
		return nil, err
	}
	if !game.Published {
		return nil, ErrGameUnpublished
	}

	result, err := scoring.Score(game.AttributeList(), game.AnswerSet(), game.CorrectAnswer, guessedKey)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *GameService) getOwnedGame(gameID string, ownerID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}
	if game.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return &game, nil
}

func (s *GameService) cacheGame(game *models.Game) {
	data, err := json.Marshal(game)
	if err != nil {
		logger.Errorf("Failed to marshal game %s for cache: %v", game.ID, err)
		return
	}

	if err := s.redis.Set(context.Background(), gameCacheKey(game.ID), data, gameCacheTTL).Err(); err != nil {
		logger.Warnf("Failed to cache game %s: %v", game.ID, err)
	}
}

func (s *GameService) getCachedGame(gameID string) *models.Game {
	data, err := s.redis.Get(context.Background(), gameCacheKey(gameID)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warnf("Redis error getting game %s: %v", gameID, err)
		}
		return nil
	}

	var game models.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		logger.Errorf("Failed to unmarshal cached game %s: %v", gameID, err)
		return nil
	}
	return &game
}

func (s *GameService) invalidateCache(gameID string) {
	if err := s.redis.Del(context.Background(), gameCacheKey(gameID)).Err(); err != nil {
		logger.Warnf("Failed to invalidate cache for game %s: %v", gameID, err)
	}
}

func gameCacheKey(gameID string) string {
	return "game:" + gameID
}
