package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Game struct {
	ID      string `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string `json:"name" gorm:"not null;index"`
	OwnerID uint   `json:"owner_id" gorm:"not null;index"`
	IconURL string `json:"icon_url"`

	// Document-shaped fields: the ordered attribute list and the answer map
	// are stored as JSON columns rather than relational children.
	Attributes datatypes.JSONType[[]AttributeDefinition] `json:"attributes"`
	Answers    datatypes.JSONType[AnswerMap]             `json:"answers"`

	// CorrectAnswer is always a key of Answers while Answers is non-empty.
	// Outside of author create/update, only the daily rotation mutates it.
	CorrectAnswer string `json:"correct_answer"`

	DailyPlays int  `json:"daily_plays" gorm:"not null;default:0"`
	TotalPlays int  `json:"total_plays" gorm:"not null;default:0"`
	MaxGuesses *int `json:"max_guesses,omitempty"`
	Published  bool `json:"published" gorm:"not null;default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// AttributeList unwraps the JSON column into the declared attribute order.
func (g *Game) AttributeList() []AttributeDefinition {
	return g.Attributes.Data()
}

// AnswerSet unwraps the JSON column into the answer map.
func (g *Game) AnswerSet() AnswerMap {
	return g.Answers.Data()
}
