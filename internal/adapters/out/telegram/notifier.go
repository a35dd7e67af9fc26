// Package telegram delivers order status notifications to customers through
// a Telegram bot.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	DefaultQueueSize = 256
	sendTimeout      = 10 * time.Second
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ChatResolver finds the Telegram chat linked to a user.
type ChatResolver interface {
	TelegramChatID(ctx context.Context, userID int64) (int64, bool, error)
}

// Notifier implements ports.StatusNotifier. Changes are queued and sent by a
// single worker; when the queue is full the change is dropped with a
// warning. Without a sender, messages are only logged.
type Notifier struct {
	sender Sender
	chats  ChatResolver
	logger *slog.Logger

	queue chan ports.StatusChange
	done  chan struct{}

	mu      sync.RWMutex
	started bool
	closed  bool
}

func NewNotifier(sender Sender, chats ChatResolver, logger *slog.Logger, queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Notifier{
		sender: sender,
		chats:  chats,
		logger: logger.With("component", "telegram_notifier"),
		queue:  make(chan ports.StatusChange, queueSize),
		done:   make(chan struct{}),
	}
}

// NewBotSender connects to the Bot API. An empty token yields a nil sender.
func NewBotSender(token string) (Sender, error) {
	if token == "" {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram bot: %w", err)
	}
	return api, nil
}

// NotifyStatusChanged never blocks. Changes arriving after Stop are dropped.
func (n *Notifier) NotifyStatusChanged(_ context.Context, change ports.StatusChange) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.logger.Warn("notifier stopped, dropping status change",
			"order_id", change.OrderID.String(), "status", change.Status.String())
		return
	}

	select {
	case n.queue <- change:
	default:
		n.logger.Warn("notification queue is full, dropping status change",
			"order_id", change.OrderID.String(), "status", change.Status.String())
	}
}

// Start launches the worker. It is a no-op on a started notifier.
func (n *Notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started || n.closed {
		return
	}
	n.started = true

	go n.run()
	n.logger.Info("Telegram notifier started", "delivery_enabled", n.sender != nil)
}

// Stop refuses new changes and waits until the queued ones are sent or ctx
// is done.
func (n *Notifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	close(n.queue)
	started := n.started
	n.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case <-n.done:
		n.logger.Info("Telegram notifier stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) run() {
	defer close(n.done)
	for change := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := n.deliver(ctx, change); err != nil {
			n.logger.ErrorContext(ctx, "Failed to deliver status notification",
				"order_id", change.OrderID.String(), "error", err)
		}
		cancel()
	}
}

func (n *Notifier) deliver(ctx context.Context, change ports.StatusChange) error {
	text := MessageText(change)

	if n.sender == nil {
		n.logger.InfoContext(ctx, "Status notification",
			"user_id", change.UserID, "order_id", change.OrderID.String(), "text", text)
		return nil
	}

	chatID, ok, err := n.chats.TelegramChatID(ctx, change.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve chat: %w", err)
	}
	if !ok {
		n.logger.DebugContext(ctx, "User has no linked chat", "user_id", change.UserID)
		return nil
	}

	if _, err = n.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return err
	}
	return nil
}

// MessageText renders the customer-facing text of a status change.
func MessageText(change ports.StatusChange) string {
	return fmt.Sprintf("Order %s: %s", change.OrderNumber.String(), statusPhrase(change.Status))
}

func statusPhrase(s order.Status) string {
	switch s {
	case order.Pending:
		return "received and waiting for the restaurant."
	case order.Confirmed:
		return "confirmed by the restaurant."
	case order.Preparing:
		return "being prepared."
	case order.Ready:
		return "ready and waiting for the courier."
	case order.Delivering:
		return "on the way to you."
	case order.Delivered:
		return "delivered. Enjoy your meal!"
	case order.Cancelled:
		return "cancelled."
	default:
		return "status changed to " + s.String() + "."
	}
}
