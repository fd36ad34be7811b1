package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mareviva/mareviva/internal/services"
)

// ListChats shows the user's conversations, most recent activity first.
func (a *App) ListChats(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	chats := a.messages.ChatsByUser(ctx, a.current.ID)
	if len(chats) == 0 {
		fmt.Fprintln(a.out, "Nenhuma conversa ainda.")
		return nil
	}

	for i, c := range chats {
		_, otherName := c.OtherParticipant(a.current.ID)
		line := fmt.Sprintf("%d. %s", i+1, otherName)
		if c.ProductName != "" {
			line += " — " + c.ProductName
		}
		if c.UnreadCount > 0 {
			line += fmt.Sprintf(" (%d não lidas)", c.UnreadCount)
		}
		if c.LastMessage != "" {
			line += ": " + c.LastMessage
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// OpenChat picks one of the user's conversations and enters the chat view.
func (a *App) OpenChat(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	chats := a.messages.ChatsByUser(ctx, a.current.ID)
	if len(chats) == 0 {
		fmt.Fprintln(a.out, "Nenhuma conversa ainda.")
		return nil
	}

	_ = a.ListChats(ctx)
	choice, err := getSimpleText(a.reader, "Número da conversa", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(chats) {
		fmt.Fprintln(a.out, "Número inválido")
		return nil
	}

	c := chats[n-1]
	otherID, otherName := c.OtherParticipant(a.current.ID)
	return a.chatView(ctx, c.ID, otherID, otherName, "", "")
}

// ContactSeller picks a listing from the catalog and opens (or resumes) the
// conversation with its seller, scoped to that listing.
func (a *App) ContactSeller(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list := a.products.AllProducts(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nenhum produto anunciado ainda.")
		return nil
	}

	p := a.pickProduct(list, "Número do produto")
	if p == nil {
		return nil
	}
	if p.SellerID == a.current.ID {
		fmt.Fprintln(a.out, "Este anúncio é seu.")
		return nil
	}

	chat, err := a.messages.GetOrCreateChat(ctx, services.SendMessageInput{
		SenderID:     a.current.ID,
		SenderName:   a.current.Name,
		ReceiverID:   p.SellerID,
		ReceiverName: p.SellerName,
		ProductID:    p.ID,
		ProductName:  p.Name,
	})
	if err != nil {
		a.log.Error(ctx, "chat open failed", "error", err)
		fmt.Fprintln(a.out, "Erro ao abrir conversa. Tente novamente.")
		return err
	}

	return a.chatView(ctx, chat.ID, p.SellerID, p.SellerName, p.ID, p.Name)
}

// chatLog tracks how much of a conversation has been printed. Guarded by a
// mutex because the refresh ticker and the send path both render.
type chatLog struct {
	mu    sync.Mutex
	shown int
}

// chatView is the interactive conversation screen: typed lines are sent to
// the other participant, a background ticker re-reads the conversation so
// messages sent from elsewhere show up while the view is open, and "/sair"
// leaves the view.
func (a *App) chatView(ctx context.Context, chatID, otherID, otherName, productID, productName string) error {
	fmt.Fprintf(a.out, "Conversa com %s — digite a mensagem, ou /sair para voltar\n", otherName)

	view := &chatLog{}
	a.renderNewMessages(ctx, chatID, view)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchChat(watchCtx, chatID, view)

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "/sair" {
			return nil
		}
		if text == "" {
			continue
		}

		res := a.messages.SendMessage(ctx, services.SendMessageInput{
			SenderID:     a.current.ID,
			SenderName:   a.current.Name,
			ReceiverID:   otherID,
			ReceiverName: otherName,
			Text:         text,
			ProductID:    productID,
			ProductName:  productName,
		})
		if !res.Success {
			fmt.Fprintln(a.out, res.Message)
			continue
		}
		a.renderNewMessages(ctx, chatID, view)
	}
}

// watchChat periodically re-renders the conversation until ctx is cancelled.
func (a *App) watchChat(ctx context.Context, chatID string, view *chatLog) {
	ticker := time.NewTicker(a.config.ChatPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.renderNewMessages(ctx, chatID, view)
		case <-ctx.Done():
			return
		}
	}
}

// renderNewMessages prints the messages not shown yet and marks the
// conversation read.
func (a *App) renderNewMessages(ctx context.Context, chatID string, view *chatLog) {
	view.mu.Lock()
	defer view.mu.Unlock()

	msgs := a.messages.MessagesByChat(ctx, chatID)
	for _, m := range msgs[min(view.shown, len(msgs)):] {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.Timestamp.Local().Format("15:04"), m.SenderName, m.Text)
	}
	if len(msgs) > view.shown {
		view.shown = len(msgs)
		a.messages.MarkChatRead(ctx, chatID)
	}
}
