package handlers

import (
	"fmt"
	"strings"

	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/pkg/errors"
)

// startGame creates the game and, on success, prompts for a theme.
func (m *Manager) startGame(ev Event) error {
	game, err := m.createGame(ev)
	if err != nil || game == nil {
		return err
	}
	return m.showAvailableThemes(ev, game)
}

// createGame sets up the game row, its session, and one player+score per
// chat member. Returns nil (no error) when a game already exists, after
// telling the chat so.
func (m *Manager) createGame(ev Event) (*models.Game, error) {
	if _, err := m.games.GetGameByChatID(ev.ChatID); err == nil {
		return nil, m.broadcast(ev, MsgGameExists)
	} else if !errors.IsCode(err, errors.ErrCodeNotFound) {
		return nil, err
	}

	game, err := m.games.CreateGame(ev.ChatID)
	if err != nil {
		return nil, err
	}
	if _, err := m.games.CreateGameSession(game.ID, models.SessionStateStarted); err != nil {
		return nil, err
	}
	if err := m.broadcast(ev, MsgGameCreated); err != nil {
		return nil, err
	}

	members, err := m.notifier.ChatMembers(ev.ChatID)
	if err != nil {
		return nil, err
	}

	var roster strings.Builder
	for _, member := range members {
		player, err := m.games.CreatePlayer(game.ID, member.UserID, memberName(member))
		if err != nil {
			// Fail fast: report the offending member and stop registering.
			if berr := m.broadcast(ev, fmt.Sprintf(MsgPlayerNotMade, member.UserID)); berr != nil {
				return nil, berr
			}
			break
		}

		score, err := m.games.CreateScore(game.ID, player.ID)
		if err != nil {
			if berr := m.broadcast(ev, fmt.Sprintf(MsgScoreNotMade, member.UserID)); berr != nil {
				return nil, berr
			}
			break
		}

		fmt.Fprintf(&roster, "%s -- %d\n", player.Name, score.Score)
	}

	return game, m.broadcast(ev, roster.String())
}

// deleteGame removes the chat's game; players, scores and the session
// cascade away with it.
func (m *Manager) deleteGame(ev Event) error {
	game, err := m.games.GetGameByChatID(ev.ChatID)
	if errors.IsCode(err, errors.ErrCodeNotFound) {
		return m.broadcast(ev, MsgGameNotFound)
	}
	if err != nil {
		return err
	}

	if err := m.games.DeleteGame(game.ID); err != nil {
		return err
	}
	return m.broadcast(ev, MsgGameDeleted)
}

// finishGame always reports the current score, then tears the game down.
func (m *Manager) finishGame(ev Event) error {
	if _, err := m.games.GetGameByChatID(ev.ChatID); errors.IsCode(err, errors.ErrCodeNotFound) {
		return m.broadcast(ev, MsgGameNotFound)
	} else if err != nil {
		return err
	}

	if err := m.showScore(ev); err != nil {
		return err
	}
	return m.deleteGame(ev)
}

func memberName(member ChatMember) string {
	name := strings.TrimSpace(member.FirstName + " " + member.LastName)
	if name == "" {
		return fmt.Sprintf("player %d", member.UserID)
	}
	return name
}
