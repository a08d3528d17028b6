package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guessdle/models"
	"guessdle/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGameService(t *testing.T) *services.GameService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.UserGameHistory{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return services.NewGameService(db, rdb)
}

func newPublishedGame(t *testing.T, svc *services.GameService) *models.Game {
	t.Helper()

	game, err := svc.CreateGame(1, &services.CreateGameRequest{
		Name: "Birds",
		Attributes: []services.AttributeInput{
			{Name: "Color", Type: "string"},
		},
		Answers: []services.AnswerInput{
			{Name: "Robin", Attributes: map[string]string{"Color": "Red"}},
			{Name: "Crow", Attributes: map[string]string{"Color": "Black"}},
		},
		CorrectAnswer: "Crow",
	})
	if err != nil {
		t.Fatalf("CreateGame error: %v", err)
	}
	if _, err := svc.PublishGame(game.ID, 1); err != nil {
		t.Fatalf("PublishGame error: %v", err)
	}
	return game
}

// The hidden correct answer must never appear in the public read responses;
// a player who can read it wins every game.
func TestPublicGameReadsWithholdCorrectAnswer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := newTestGameService(t)
	game := newPublishedGame(t, svc)
	h := NewGameHandler(svc, nil)

	router := gin.New()
	router.GET("/api/games", h.ListGames)
	router.GET("/api/games/:id", h.GetGameByID)

	tests := []struct {
		name string
		path string
	}{
		{name: "get by id", path: "/api/games/" + game.ID},
		{name: "list", path: "/api/games"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
			}

			body := w.Body.String()
			if strings.Contains(body, "correct_answer") {
				t.Errorf("response carries the correct_answer field: %s", body)
			}
			// The playable parts still come through.
			if !strings.Contains(body, game.ID) || !strings.Contains(body, `"Robin"`) {
				t.Errorf("response is missing game fields: %s", body)
			}
		})
	}
}
