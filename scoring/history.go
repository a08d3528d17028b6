package scoring

import "guessdle/models"

// ApplyPlay folds one completed play into a user's history entry for a game.
// Pass nil for the user's first play of the game. The game name is refreshed
// on every play so renamed games show their current title. timeTaken is taken
// as-is; the min rule holds for any numeric value.
func ApplyPlay(existing *models.UserGameHistory, gameID, gameName string, won bool, timeTaken float64) models.UserGameHistory {
	entry := models.UserGameHistory{
		GameID:      gameID,
		FastestTime: models.FastestTimeSentinel,
	}
	if existing != nil {
		entry = *existing
	}

	entry.GameName = gameName
	entry.NumPlays++
	if won {
		entry.NumWins++
	}
	if timeTaken < entry.FastestTime {
		entry.FastestTime = timeTaken
	}
	return entry
}
