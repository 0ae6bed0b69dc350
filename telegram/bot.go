package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/quiz_bot/internal/config"
	"github.com/mroshb/quiz_bot/internal/handlers"
	"github.com/mroshb/quiz_bot/internal/repositories"
	"github.com/mroshb/quiz_bot/pkg/logger"
	"gorm.io/gorm"
)

// Bot is the messaging-platform layer: it pulls updates off the Telegram
// long-poll, feeds them to the game manager, and implements the manager's
// Notifier interface for outbound traffic.
type Bot struct {
	api     *tgbotapi.BotAPI
	config  *config.Config
	manager *handlers.Manager

	// Updates are hashed by chat id onto these workers so events for one
	// chat are processed in order, one at a time.
	workerChans []chan handlers.Event
	done        chan struct{}
}

func InitBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	bot := &Bot{
		api:         api,
		config:      cfg,
		workerChans: make([]chan handlers.Event, cfg.WorkerCount),
		done:        make(chan struct{}),
	}

	quizRepo := repositories.NewQuizRepository(db)
	gameRepo := repositories.NewGameRepository(db)
	bot.manager = handlers.NewManager(quizRepo, gameRepo, bot)

	for i := range bot.workerChans {
		bot.workerChans[i] = make(chan handlers.Event, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for {
		select {
		case <-b.done:
			return
		default:
		}

		logger.Info("Starting update listener...")
		updates := b.api.GetUpdatesChan(u)

		for update := range updates {
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			ev := handlers.Event{
				MessageID: update.Message.MessageID,
				UserID:    update.Message.From.ID,
				ChatID:    update.Message.Chat.ID,
				Body:      update.Message.Text,
			}

			workerIdx := ev.ChatID % int64(len(b.workerChans))
			if workerIdx < 0 {
				workerIdx = -workerIdx
			}
			b.workerChans[workerIdx] <- ev
		}

		select {
		case <-b.done:
			return
		default:
			logger.Warn("Update channel closed. Restarting in 5 seconds...")
			time.Sleep(5 * time.Second)
		}
	}
}

func (b *Bot) startWorker(events chan handlers.Event) {
	for ev := range events {
		b.handleEvent(ev)
	}
}

func (b *Bot) handleEvent(ev handlers.Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleEvent", "chat_id", ev.ChatID, "error", r)
		}
	}()

	logger.Debug("Received message", "chat_id", ev.ChatID, "user_id", ev.UserID, "text", ev.Body)
	b.manager.HandleEvent(ev)
}

// SendMessage implements handlers.Notifier: a direct message to a user.
func (b *Bot) SendMessage(userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to user %d: %w", userID, err)
	}
	return nil
}

// SendChatMessage implements handlers.Notifier: a broadcast into a chat.
func (b *Bot) SendChatMessage(userID, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

// ChatMembers implements handlers.Notifier. The Bot API has no call that
// enumerates every group member, so the roster is the chat administrator
// list — in practice every player of a private quiz group.
func (b *Bot) ChatMembers(chatID int64) ([]handlers.ChatMember, error) {
	admins, err := b.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat members for %d: %w", chatID, err)
	}

	members := make([]handlers.ChatMember, 0, len(admins))
	for _, admin := range admins {
		if admin.User == nil || admin.User.IsBot {
			continue
		}
		members = append(members, handlers.ChatMember{
			UserID:    admin.User.ID,
			FirstName: admin.User.FirstName,
			LastName:  admin.User.LastName,
		})
	}

	return members, nil
}

func (b *Bot) Stop() {
	close(b.done)
	b.api.StopReceivingUpdates()
	for _, ch := range b.workerChans {
		close(ch)
	}
}
