package handlers

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/pkg/errors"
	"github.com/mroshb/quiz_bot/pkg/timeutil"
)

// Round duration options, in minutes.
var allowedDurations = []int{1, 2, 5}

// handleInGame routes an event through the session state machine. Rule
// order matters: expiry beats everything, then the current state, then the
// setup prompts of a freshly started session.
func (m *Manager) handleInGame(ev Event, game *models.Game) error {
	session, err := m.games.GetSessionByGameID(game.ID)
	if err != nil {
		return err
	}

	if session.StartedAt != nil && session.DurationMinutes > 0 {
		budget := timeutil.RoundDuration(session.DurationMinutes)
		if timeutil.Expired(*session.StartedAt, budget) {
			return m.finishGame(ev)
		}
	}

	switch session.State {
	case models.SessionStateInProcess:
		return m.resolveAnswer(ev, game, session)
	case models.SessionStateRoundEnded:
		return m.startNewRound(ev, game)
	}

	if session.Theme == "" {
		return m.chooseTheme(ev, game)
	}
	if session.DurationMinutes == 0 {
		return m.chooseDuration(ev, game, session)
	}
	return nil
}

// chooseTheme treats the event body as a candidate theme name for a session
// that has none yet.
func (m *Manager) chooseTheme(ev Event, game *models.Game) error {
	themes, err := m.availableThemes(game.ID)
	if err != nil {
		return err
	}
	if !contains(themes, ev.Body) {
		return m.send(ev, MsgThemeNotFound)
	}

	if err := m.games.SetSessionTheme(game.ID, ev.Body); err != nil {
		return err
	}
	return m.broadcast(ev, fmt.Sprintf(MsgThemeChosen, ev.Body))
}

// chooseDuration parses the round duration, then deals the first question
// and starts the clock.
func (m *Manager) chooseDuration(ev Event, game *models.Game, session *models.GameSession) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(ev.Body))
	if err != nil || !containsInt(allowedDurations, minutes) {
		return m.send(ev, MsgDurationHint)
	}

	if err := m.games.SetSessionDuration(game.ID, minutes); err != nil {
		return err
	}
	if err := m.broadcast(ev, fmt.Sprintf(MsgDurationChosen, minutes)); err != nil {
		return err
	}

	question, err := m.randomQuestion(game.ID, session.Theme)
	if err != nil {
		return err
	}
	if err := m.sendQuestion(ev, question); err != nil {
		return err
	}
	if err := m.games.SetSessionQuestion(game.ID, question); err != nil {
		return err
	}
	if err := m.games.SetSessionStartTime(game.ID, timeutil.Now()); err != nil {
		return err
	}
	return m.games.SetSessionState(game.ID, models.SessionStateInProcess)
}

// resolveAnswer scores the event body against the outstanding question.
// Win or lose, the question is archived and the round ends; the theme is
// archived too once its pool runs dry.
func (m *Manager) resolveAnswer(ev Event, game *models.Game, session *models.GameSession) error {
	player, err := m.games.GetPlayerByGameAndUser(game.ID, ev.UserID)
	if errors.IsCode(err, errors.ErrCodeNotFound) {
		// Unknown speaker: no scoring, no round advance.
		return m.broadcast(ev, MsgPlayerNotInGame)
	}
	if err != nil {
		return err
	}

	question, err := m.quiz.GetQuestionByTitle(session.Question)
	if err != nil {
		return err
	}
	correct := question.CorrectAnswer()
	if correct == nil {
		return errors.New(errors.ErrCodeInternalError, "question has no correct answer")
	}

	if ev.Body == correct.Title {
		if err := m.games.IncrementScore(game.ID, player.ID, 1); err != nil {
			return err
		}
		if err := m.broadcast(ev, fmt.Sprintf(MsgCorrectAnswer, player.Name)); err != nil {
			return err
		}
	} else {
		if err := m.broadcast(ev, fmt.Sprintf(MsgWrongAnswer, player.Name, correct.Title)); err != nil {
			return err
		}
	}

	if err := m.games.ArchiveCurrentQuestion(game.ID); err != nil {
		return err
	}
	if err := m.games.SetSessionState(game.ID, models.SessionStateRoundEnded); err != nil {
		return err
	}

	remaining, err := m.availableQuestions(game.ID, session.Theme)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := m.games.ArchiveCurrentTheme(game.ID); err != nil {
			return err
		}
	}

	return m.showAvailableThemes(ev, game)
}

// startNewRound handles the input after a round ended: either a fresh theme
// pick, game finish when nothing is left, or a hint on bad input.
func (m *Manager) startNewRound(ev Event, game *models.Game) error {
	themes, err := m.availableThemes(game.ID)
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		return m.finishGame(ev)
	}

	if !contains(themes, ev.Body) {
		// Invalid pick leaves the session in round_ended.
		return m.broadcast(ev, MsgThemeNotExist)
	}

	if err := m.games.SetSessionTheme(game.ID, ev.Body); err != nil {
		return err
	}

	question, err := m.randomQuestion(game.ID, ev.Body)
	if err != nil {
		return err
	}
	if err := m.broadcast(ev, MsgNextQuestion); err != nil {
		return err
	}
	if err := m.sendQuestion(ev, question); err != nil {
		return err
	}
	if err := m.games.SetSessionQuestion(game.ID, question); err != nil {
		return err
	}
	return m.games.SetSessionState(game.ID, models.SessionStateInProcess)
}

// sendQuestion broadcasts a question's text together with its answer options.
func (m *Manager) sendQuestion(ev Event, title string) error {
	question, err := m.quiz.GetQuestionByTitle(title)
	if err != nil {
		return err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Question:\n%s\n\nAnswers:\n", question.Title)
	for _, answer := range question.Answers {
		text.WriteString(answer.Title)
		text.WriteString("\n")
	}

	return m.broadcast(ev, text.String())
}

// availableThemes is the catalog minus the game's used-themes archive.
func (m *Manager) availableThemes(gameID uint) ([]string, error) {
	themes, err := m.quiz.ListThemes()
	if err != nil {
		return nil, err
	}
	session, err := m.games.GetSessionByGameID(gameID)
	if err != nil {
		return nil, err
	}

	archive := session.ThemeArchive()
	var available []string
	for _, theme := range themes {
		if !archive.Contains(theme.Title) {
			available = append(available, theme.Title)
		}
	}
	return available, nil
}

// availableQuestions is the theme's questions minus the game's
// used-questions archive.
func (m *Manager) availableQuestions(gameID uint, theme string) ([]string, error) {
	questions, err := m.quiz.ListQuestionsByThemeTitle(theme)
	if err != nil {
		return nil, err
	}
	session, err := m.games.GetSessionByGameID(gameID)
	if err != nil {
		return nil, err
	}

	archive := session.QuestionArchive()
	var available []string
	for _, question := range questions {
		if !archive.Contains(question.Title) {
			available = append(available, question.Title)
		}
	}
	return available, nil
}

// randomQuestion picks uniformly from the theme's available pool. Callers
// have checked theme availability upstream, so an empty pool is an internal
// error to surface, not a crash.
func (m *Manager) randomQuestion(gameID uint, theme string) (string, error) {
	pool, err := m.availableQuestions(gameID, theme)
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", errors.New(errors.ErrCodeInternalError, "question pool is empty for theme "+theme)
	}
	return pool[rand.Intn(len(pool))], nil
}

func (m *Manager) showAvailableThemes(ev Event, game *models.Game) error {
	themes, err := m.availableThemes(game.ID)
	if err != nil {
		return err
	}

	text := MsgChooseTheme
	for _, theme := range themes {
		text += theme + "\n"
	}
	return m.broadcast(ev, text)
}

func contains(list []string, item string) bool {
	for _, x := range list {
		if x == item {
			return true
		}
	}
	return false
}

func containsInt(list []int, item int) bool {
	for _, x := range list {
		if x == item {
			return true
		}
	}
	return false
}
