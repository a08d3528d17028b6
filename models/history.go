package models

import (
	"math"
	"time"
)

// FastestTimeSentinel initializes FastestTime so the first recorded play
// always becomes the fastest.
const FastestTimeSentinel = math.MaxFloat64

// UserGameHistory is one user's cumulative play statistics for one game.
// Created lazily on the first completed play; counters only ever move one way
// (NumPlays and NumWins up, FastestTime down).
type UserGameHistory struct {
	UserID      uint    `json:"-" gorm:"primaryKey;autoIncrement:false"`
	GameID      string  `json:"id" gorm:"type:uuid;primaryKey"`
	GameName    string  `json:"name"`
	NumPlays    int     `json:"numPlays" gorm:"not null;default:0"`
	NumWins     int     `json:"numWins" gorm:"not null;default:0"`
	FastestTime float64 `json:"fastestTime"`

	UpdatedAt time.Time `json:"updated_at"`
}
