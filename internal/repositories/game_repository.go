package repositories

import (
	"time"

	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/pkg/errors"
	"gorm.io/gorm"
)

// GameRepository owns games, players, scores and the per-game session row.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateGame creates a game row for a chat.
func (r *GameRepository) CreateGame(chatID int64) (*models.Game, error) {
	var existing models.Game
	if err := r.db.Where("chat_id = ?", chatID).First(&existing).Error; err == nil {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "game already exists for chat")
	}

	game := &models.Game{ChatID: chatID}
	if err := r.db.Create(game).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create game")
	}

	return game, nil
}

// GetGameByChatID resolves the running game for a chat, if any.
func (r *GameRepository) GetGameByChatID(chatID int64) (*models.Game, error) {
	var game models.Game
	result := r.db.Where("chat_id = ?", chatID).First(&game)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "game not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get game")
	}

	return &game, nil
}

// DeleteGame removes a game. Players, scores and the session go with it
// through the foreign-key cascades.
func (r *GameRepository) DeleteGame(gameID uint) error {
	// sqlite test databases do not always enforce the cascades, so the
	// children are removed explicitly in one transaction.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&models.GameSession{}).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete game session")
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.Score{}).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete scores")
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.Player{}).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete players")
		}
		result := tx.Delete(&models.Game{}, gameID)
		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to delete game")
		}
		if result.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNotFound, "game not found")
		}
		return nil
	})
}

// CreatePlayer registers a chat member in a game.
func (r *GameRepository) CreatePlayer(gameID uint, userID int64, name string) (*models.Player, error) {
	player := &models.Player{
		GameID: gameID,
		UserID: userID,
		Name:   name,
	}
	if err := r.db.Create(player).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create player")
	}
	return player, nil
}

// GetPlayerByGameAndUser is the indexed (game_id, user_id) lookup answer
// resolution depends on.
func (r *GameRepository) GetPlayerByGameAndUser(gameID uint, userID int64) (*models.Player, error) {
	var player models.Player
	result := r.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&player)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "player not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get player")
	}

	return &player, nil
}

func (r *GameRepository) ListPlayers(gameID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("game_id = ?", gameID).Order("id ASC").Find(&players).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list players")
	}
	return players, nil
}

// CreateScore opens a score row for a player, starting at zero.
func (r *GameRepository) CreateScore(gameID, playerID uint) (*models.Score, error) {
	score := &models.Score{
		GameID:   gameID,
		PlayerID: playerID,
		Score:    0,
	}
	if err := r.db.Create(score).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create score")
	}
	return score, nil
}

func (r *GameRepository) GetScore(gameID, playerID uint) (*models.Score, error) {
	var score models.Score
	result := r.db.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&score)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "score not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get score")
	}

	return &score, nil
}

// IncrementScore adds points to a player's score in place.
func (r *GameRepository) IncrementScore(gameID, playerID uint, points int) error {
	result := r.db.Model(&models.Score{}).
		Where("game_id = ? AND player_id = ?", gameID, playerID).
		Update("score", gorm.Expr("score + ?", points))

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to increment score")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "score not found")
	}

	return nil
}

// CreateGameSession opens the single session row of a game.
func (r *GameRepository) CreateGameSession(gameID uint, state string) (*models.GameSession, error) {
	var existing models.GameSession
	if err := r.db.Where("game_id = ?", gameID).First(&existing).Error; err == nil {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "game session already exists")
	}

	session := &models.GameSession{
		GameID:            gameID,
		State:             state,
		AnsweredThemes:    "[]",
		AnsweredQuestions: "[]",
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create game session")
	}

	return session, nil
}

func (r *GameRepository) GetSessionByGameID(gameID uint) (*models.GameSession, error) {
	var session models.GameSession
	result := r.db.Where("game_id = ?", gameID).First(&session)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "game session not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get game session")
	}

	return &session, nil
}

func (r *GameRepository) SetSessionTheme(gameID uint, theme string) error {
	return r.updateSession(gameID, "theme", theme)
}

func (r *GameRepository) SetSessionDuration(gameID uint, minutes int) error {
	return r.updateSession(gameID, "duration_minutes", minutes)
}

func (r *GameRepository) SetSessionQuestion(gameID uint, question string) error {
	return r.updateSession(gameID, "question", question)
}

func (r *GameRepository) SetSessionStartTime(gameID uint, startedAt time.Time) error {
	return r.updateSession(gameID, "started_at", startedAt)
}

func (r *GameRepository) SetSessionState(gameID uint, state string) error {
	return r.updateSession(gameID, "state", state)
}

func (r *GameRepository) updateSession(gameID uint, column string, value interface{}) error {
	result := r.db.Model(&models.GameSession{}).
		Where("game_id = ?", gameID).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update game session")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "game session not found")
	}

	return nil
}

// ArchiveCurrentQuestion records the session's current question title in
// the used-questions archive.
func (r *GameRepository) ArchiveCurrentQuestion(gameID uint) error {
	session, err := r.GetSessionByGameID(gameID)
	if err != nil {
		return err
	}
	if session.Question == "" {
		return errors.New(errors.ErrCodeInternalError, "no current question to archive")
	}

	archive := session.QuestionArchive().Append(session.Question)
	return r.updateSession(gameID, "answered_questions", archive.Encode())
}

// ArchiveCurrentTheme records the session's current theme title in the
// used-themes archive.
func (r *GameRepository) ArchiveCurrentTheme(gameID uint) error {
	session, err := r.GetSessionByGameID(gameID)
	if err != nil {
		return err
	}
	if session.Theme == "" {
		return errors.New(errors.ErrCodeInternalError, "no current theme to archive")
	}

	archive := session.ThemeArchive().Append(session.Theme)
	return r.updateSession(gameID, "answered_themes", archive.Encode())
}
