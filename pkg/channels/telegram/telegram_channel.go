package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramConfig encapsulates the credentials required to authenticate with
// the Telegram Bot API.
type TelegramConfig struct {
	Token    string `json:"token"`     // The secret BOT API string provided by @BotFather
	TokenEnv string `json:"token_env"` // Optional environment variable holding the token
}

// TelegramChannel is the production implementation of api.Channel for the
// Telegram platform. It receives text queries via long polling and sends
// replies, splitting long answers into multiple message bubbles.
type TelegramChannel struct {
	bot          *tgbotapi.BotAPI   // Underlying Telegram SDK client
	messageLimit int                // Maximum character count per single message bubble
	stopCtx      context.Context    // Context used to abort the long-polling loop
	stopCancel   context.CancelFunc // Function to trigger the abort
}

func NewTelegramChannel(cfg TelegramConfig, msgLimit int) (api.Channel, error) {
	ctx, cancel := context.WithCancel(context.Background())

	// Tie the bot's HTTP connections to our stopCtx so active long-polling
	// requests are aborted when Stop() is called, preventing a 409 Conflict
	// when the process restarts.
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	botHTTPClient := &http.Client{
		Timeout: 90 * time.Second,
		Transport: &http.Transport{
			DialContext: func(dialCtx context.Context, network, addr string) (net.Conn, error) {
				mergedCtx, mergedCancel := context.WithCancel(dialCtx)
				go func() {
					select {
					case <-ctx.Done():
						mergedCancel()
					case <-mergedCtx.Done():
					}
				}()
				return dialer.DialContext(mergedCtx, network, addr)
			},
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, tgbotapi.APIEndpoint, botHTTPClient)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot authorized", "username", bot.Self.UserName)

	return &TelegramChannel{
		bot:          bot,
		messageLimit: msgLimit,
		stopCtx:      ctx,
		stopCancel:   cancel,
	}, nil
}

// ID returns the unique platform identifier "telegram".
func (t *TelegramChannel) ID() string {
	return "telegram"
}

// Start initiates the long-polling update loop in a background goroutine.
// Incoming text messages are mapped into the internal UnifiedMessage format.
func (t *TelegramChannel) Start(ctx api.ChannelContext) error {
	offset := 0

	go func() {
		for {
			select {
			case <-t.stopCtx.Done():
				return
			default:
			}

			// GetUpdates (rather than GetUpdatesChan) keeps the offset under
			// our control so the loop can be interrupted between polls.
			reqConfig := tgbotapi.NewUpdate(offset)
			reqConfig.Timeout = 60

			updates, err := t.bot.GetUpdates(reqConfig)
			if err != nil {
				select {
				case <-t.stopCtx.Done():
					return
				default:
					slog.Debug("Failed to get telegram updates", "error", err)
					time.Sleep(3 * time.Second)
					continue
				}
			}

			for _, update := range updates {
				if update.UpdateID < offset {
					continue
				}
				offset = update.UpdateID + 1

				if update.Message == nil {
					continue
				}

				content := update.Message.Text
				if content == "" {
					content = update.Message.Caption
				}
				if content == "" {
					continue
				}

				session := api.SessionContext{
					ChannelID: "telegram",
					UserID:    strconv.FormatInt(update.Message.From.ID, 10),
					ChatID:    strconv.FormatInt(update.Message.Chat.ID, 10),
					Username:  update.Message.From.UserName,
				}

				ctx.OnMessage(t.ID(), &api.UnifiedMessage{
					Session: session,
					Content: content,
					Raw:     update.Message,
				})
			}
		}
	}()

	return nil
}

func (t *TelegramChannel) Stop() error {
	t.stopCancel()

	// Clear the connection pool. Active HTTP/1.1 reads are aborted through
	// the stopCtx wired into DialContext above.
	if httpClient, ok := t.bot.Client.(*http.Client); ok && httpClient != nil {
		if transport, ok := httpClient.Transport.(*http.Transport); ok {
			transport.CloseIdleConnections()
		}
	}

	return nil
}

func (t *TelegramChannel) Send(session api.SessionContext, message string) error {
	// Telegram Chat ID must be int64
	chatID, err := strconv.ParseInt(session.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id for telegram: %s", session.ChatID)
	}

	msgRunes := []rune(message)
	totalLen := len(msgRunes)

	if totalLen <= t.messageLimit {
		msg := tgbotapi.NewMessage(chatID, message)
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram send failed: %w", err)
		}
		return nil
	}

	// Send long message in chunks
	for i := 0; i < totalLen; i += t.messageLimit {
		end := i + t.messageLimit
		if end > totalLen {
			end = totalLen
		}
		chunk := string(msgRunes[i:end])
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram send chunk failed at index %d: %w", i, err)
		}
	}

	return nil
}
