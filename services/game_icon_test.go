package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"guessdle/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGameService(t *testing.T) *GameService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.UserGameHistory{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// No redis in unit tests; cache reads and invalidations degrade to the
	// database path.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return NewGameService(db, rdb)
}

func createColorGame(t *testing.T, svc *GameService, ownerID uint) *models.Game {
	t.Helper()

	game, err := svc.CreateGame(ownerID, &CreateGameRequest{
		Name: "Birds",
		Attributes: []AttributeInput{
			{Name: "Color", Type: "string"},
			{Name: "Wingspan", Type: "number"},
		},
		Answers: []AnswerInput{
			{Name: "Robin", Attributes: map[string]string{"Color": "Red", "Wingspan": "21"}},
			{Name: "Crow", Attributes: map[string]string{"Color": "Black", "Wingspan": "90"}},
		},
		CorrectAnswer: "Crow",
	})
	if err != nil {
		t.Fatalf("CreateGame error: %v", err)
	}
	return game
}

type recordingUploader struct {
	calls []string
}

func (u *recordingUploader) UploadGameIcon(ctx context.Context, file multipart.File, gameID string) (string, error) {
	u.calls = append(u.calls, gameID)
	return "https://img.test/" + gameID + ".png", nil
}

func TestUploadIconChecksOwnershipBeforeUpload(t *testing.T) {
	svc := newTestGameService(t)
	game := createColorGame(t, svc, 1)
	uploader := &recordingUploader{}

	_, err := svc.UploadIcon(context.Background(), game.ID, 2, nil, uploader)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
	if len(uploader.calls) != 0 {
		t.Fatalf("image host called %d times for a non-owner, want 0", len(uploader.calls))
	}

	_, err = svc.UploadIcon(context.Background(), "no-such-game", 2, nil, uploader)
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("err = %v, want ErrGameNotFound", err)
	}
	if len(uploader.calls) != 0 {
		t.Fatalf("image host called %d times for an unknown game, want 0", len(uploader.calls))
	}
}

func TestUploadIconStoresHostedURL(t *testing.T) {
	svc := newTestGameService(t)
	game := createColorGame(t, svc, 1)
	uploader := &recordingUploader{}

	updated, err := svc.UploadIcon(context.Background(), game.ID, 1, nil, uploader)
	if err != nil {
		t.Fatalf("UploadIcon error: %v", err)
	}
	if len(uploader.calls) != 1 || uploader.calls[0] != game.ID {
		t.Fatalf("image host calls = %v, want one call for %s", uploader.calls, game.ID)
	}

	want := "https://img.test/" + game.ID + ".png"
	if updated.IconURL != want {
		t.Errorf("IconURL = %q, want %q", updated.IconURL, want)
	}
}
