package handlers

import (
	"fmt"
	"strings"

	"github.com/mroshb/quiz_bot/pkg/errors"
	"github.com/mroshb/quiz_bot/pkg/timeutil"
)

// showScore broadcasts the remaining round time (when the clock is running)
// and every player's score in one message. It reads only, so repeated calls
// never change any score.
func (m *Manager) showScore(ev Event) error {
	game, err := m.games.GetGameByChatID(ev.ChatID)
	if errors.IsCode(err, errors.ErrCodeNotFound) {
		return m.broadcast(ev, MsgGameNotFound)
	}
	if err != nil {
		return err
	}

	session, err := m.games.GetSessionByGameID(game.ID)
	if err != nil {
		return err
	}
	players, err := m.games.ListPlayers(game.ID)
	if err != nil {
		return err
	}

	var table strings.Builder
	if session.StartedAt != nil && session.DurationMinutes > 0 {
		left := timeutil.Remaining(*session.StartedAt, timeutil.RoundDuration(session.DurationMinutes))
		fmt.Fprintf(&table, MsgTimeRemaining, timeutil.DaysHoursMinutes(left))
	}

	for _, player := range players {
		score, err := m.games.GetScore(game.ID, player.ID)
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(&table, "%s -- %d\n", player.Name, score.Score)
	}

	return m.broadcast(ev, table.String())
}
