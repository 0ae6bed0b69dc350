package handlers

import (
	"github.com/mroshb/quiz_bot/internal/repositories"
	"github.com/mroshb/quiz_bot/pkg/errors"
	"github.com/mroshb/quiz_bot/pkg/logger"
)

// Manager drives the per-chat game session state machine. It consumes
// inbound events, reads and mutates game state through the repositories,
// and talks back through the Notifier.
type Manager struct {
	quiz     *repositories.QuizRepository
	games    *repositories.GameRepository
	notifier Notifier

	commands []string
}

func NewManager(quiz *repositories.QuizRepository, games *repositories.GameRepository, notifier Notifier) *Manager {
	return &Manager{
		quiz:     quiz,
		games:    games,
		notifier: notifier,
		commands: []string{
			"/start",
			"/finish",
			"/best_startup",
			"/help",
			"/score",
		},
	}
}

// HandleEvent maps one inbound chat event to an action. Commands win over
// everything else, first match only; any other text is routed into the
// chat's session if one is active, and answered with a help hint otherwise.
// Failures never escape: they are logged and turned into an apology message.
func (m *Manager) HandleEvent(ev Event) {
	for _, cmd := range m.commands {
		if ev.Body == cmd {
			m.runCommand(cmd, ev)
			return
		}
	}

	game, err := m.games.GetGameByChatID(ev.ChatID)
	if err == nil {
		if err := m.handleInGame(ev, game); err != nil {
			m.reportFailure(ev, err)
		}
		return
	}
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		m.reportFailure(ev, err)
		return
	}

	if err := m.send(ev, MsgHelpHint); err != nil {
		m.reportFailure(ev, err)
	}
}

func (m *Manager) runCommand(cmd string, ev Event) {
	var err error
	switch cmd {
	case "/start":
		err = m.startGame(ev)
	case "/finish":
		err = m.finishGame(ev)
	case "/best_startup":
		err = m.broadcast(ev, MsgEasterEgg)
	case "/help":
		err = m.broadcast(ev, MsgHelp)
	case "/score":
		err = m.showScore(ev)
	}
	if err != nil {
		m.reportFailure(ev, err)
	}
}

// reportFailure is the orchestration boundary of the error policy: log the
// failure and apologize in chat, keeping the dispatch loop alive for other
// events.
func (m *Manager) reportFailure(ev Event, err error) {
	logger.Error("event handling failed",
		"chat_id", ev.ChatID,
		"user_id", ev.UserID,
		"code", errors.Code(err),
		"error", err,
	)
	if sendErr := m.broadcast(ev, MsgInternalError); sendErr != nil {
		logger.Error("failed to deliver error reply", "chat_id", ev.ChatID, "error", sendErr)
	}
}

func (m *Manager) send(ev Event, text string) error {
	return m.notifier.SendMessage(ev.UserID, text)
}

func (m *Manager) broadcast(ev Event, text string) error {
	return m.notifier.SendChatMessage(ev.UserID, ev.ChatID, text)
}
