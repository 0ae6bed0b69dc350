package models

import (
	"time"
)

// Game represents one chat's running match. ChatID is the external
// correlation key; at most one game exists per chat.
type Game struct {
	ID        uint         `gorm:"primaryKey"`
	ChatID    int64        `gorm:"uniqueIndex;not null"`
	Players   []Player     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Scores    []Score      `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Session   *GameSession `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
}

func (Game) TableName() string {
	return "games"
}

type Player struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;index:idx_players_game_user,unique"`
	UserID    int64     `gorm:"not null;index:idx_players_game_user,unique"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Player) TableName() string {
	return "players"
}

type Score struct {
	ID       uint `gorm:"primaryKey"`
	GameID   uint `gorm:"not null;index:idx_scores_game_player,unique"`
	PlayerID uint `gorm:"not null;index:idx_scores_game_player,unique"`
	Score    int  `gorm:"not null;default:0"`
}

func (Score) TableName() string {
	return "scores"
}

// Session state constants
const (
	SessionStateStarted    = "started"
	SessionStateInProcess  = "in_process"
	SessionStateRoundEnded = "round_ended"
)

// GameSession is the per-game progress record driving the state machine.
// Theme and Question hold the titles currently in play; the archive columns
// record titles already used, encoded as JSON arrays.
type GameSession struct {
	ID                uint       `gorm:"primaryKey"`
	GameID            uint       `gorm:"uniqueIndex;not null"`
	State             string     `gorm:"type:varchar(20);not null;default:'started'"`
	Theme             string     `gorm:"type:varchar(255)"`
	Question          string     `gorm:"type:text"`
	DurationMinutes   int        `gorm:"not null;default:0"`
	StartedAt         *time.Time
	AnsweredThemes    string    `gorm:"type:text;not null;default:'[]'"`
	AnsweredQuestions string    `gorm:"type:text;not null;default:'[]'"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// ThemeArchive decodes the used-themes column.
func (s *GameSession) ThemeArchive() Archive {
	return ParseArchive(s.AnsweredThemes)
}

// QuestionArchive decodes the used-questions column.
func (s *GameSession) QuestionArchive() Archive {
	return ParseArchive(s.AnsweredQuestions)
}
