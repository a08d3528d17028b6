package handlers

import (
	"errors"
	"net/http"
	"time"

	"guessdle/models"
	"guessdle/scoring"
	"guessdle/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
	uploader    services.IconUploader
}

func NewGameHandler(gameService *services.GameService, uploader services.IconUploader) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		uploader:    uploader,
	}
}

// gameErrStatus maps service errors onto HTTP statuses.
func gameErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrGameNotFound), errors.Is(err, scoring.ErrAnswerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrIconUpload):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// publicGameView is a Game as served on the public read routes. It carries
// everything a player needs to render and play the game; the hidden correct
// answer stays server-side.
type publicGameView struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	OwnerID    uint                         `json:"owner_id"`
	IconURL    string                       `json:"icon_url"`
	Attributes []models.AttributeDefinition `json:"attributes"`
	Answers    models.AnswerMap             `json:"answers"`
	DailyPlays int                          `json:"daily_plays"`
	TotalPlays int                          `json:"total_plays"`
	MaxGuesses *int                         `json:"max_guesses,omitempty"`
	Published  bool                         `json:"published"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

func newPublicGameView(g *models.Game) publicGameView {
	return publicGameView{
		ID:         g.ID,
		Name:       g.Name,
		OwnerID:    g.OwnerID,
		IconURL:    g.IconURL,
		Attributes: g.AttributeList(),
		Answers:    g.AnswerSet(),
		DailyPlays: g.DailyPlays,
		TotalPlays: g.TotalPlays,
		MaxGuesses: g.MaxGuesses,
		Published:  g.Published,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

func publicGameViews(games []models.Game) []publicGameView {
	views := make([]publicGameView, len(games))
	for i := range games {
		views[i] = newPublicGameView(&games[i])
	}
	return views
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(userID.(uint), &req)
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.UpdateGame(c.Param("id"), userID.(uint), &req)
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

type renameAttributeRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

func (h *GameHandler) RenameAttribute(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req renameAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.RenameAttribute(c.Param("id"), userID.(uint), c.Param("name"), req.NewName)
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) PublishGame(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	game, err := h.gameService.PublishGame(c.Param("id"), userID.(uint))
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) UploadIcon(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image hosting is not configured"})
		return
	}

	file, _, err := c.Request.FormFile("icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Icon file required"})
		return
	}
	defer file.Close()

	game, err := h.gameService.UploadIcon(c.Request.Context(), c.Param("id"), userID.(uint), file, h.uploader)
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.gameService.DeleteGame(c.Param("id"), userID.(uint)); err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

func (h *GameHandler) ListGames(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		games, err := h.gameService.SearchGames(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, publicGameViews(games))
		return
	}

	games, err := h.gameService.ListGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, publicGameViews(games))
}

func (h *GameHandler) ListMyGames(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	games, err := h.gameService.ListGamesByOwner(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetGameByID(c *gin.Context) {
	gameID := c.Param("id")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID required"})
		return
	}

	game, err := h.gameService.GetGameByID(gameID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newPublicGameView(game))
}

type submitGuessRequest struct {
	Guess string `json:"guess" binding:"required"`
}

func (h *GameHandler) SubmitGuess(c *gin.Context) {
	gameID := c.Param("id")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID required"})
		return
	}

	var req submitGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.SubmitGuess(gameID, req.Guess)
	if err != nil {
		c.JSON(gameErrStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": result.Outcomes,
		"is_win":  result.IsWin,
		"guess":   req.Guess,
	})
}
