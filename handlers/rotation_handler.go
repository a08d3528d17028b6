package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"guessdle/services"

	"github.com/gin-gonic/gin"
)

type RotationHandler struct {
	rotationService *services.RotationService
	cronSecret      string
}

func NewRotationHandler(rotationService *services.RotationService, cronSecret string) *RotationHandler {
	return &RotationHandler{
		rotationService: rotationService,
		cronSecret:      cronSecret,
	}
}

// RotateGames is the external time-based trigger. The shared secret is
// checked before any domain logic runs.
func (h *RotationHandler) RotateGames(c *gin.Context) {
	if h.cronSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rotation trigger is not configured"})
		return
	}

	secret := c.GetHeader("X-Cron-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.cronSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid rotation secret"})
		return
	}

	if !h.rotationService.AcquireTriggerLock(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"message": "Rotation already triggered"})
		return
	}

	result, err := h.rotationService.RotateAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Rotated %d games (%d skipped, %d failed)",
			result.Rotated, result.Skipped, result.Failed),
	})
}
