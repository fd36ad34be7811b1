package models

import (
	"sort"
	"strings"
	"time"
)

// Chat is the single conversation thread between two users, optionally scoped
// to a product. There is at most one chat per unordered user pair; a new
// conversation about another product reuses the chat and overwrites its
// product fields. Chats are created lazily and never deleted.
//
// LastMessageTime is the zero time for a chat that has no messages yet.
type Chat struct {
	ID              string    `json:"id"`
	UserID1         string    `json:"userId1"`
	UserName1       string    `json:"userName1"`
	UserID2         string    `json:"userId2"`
	UserName2       string    `json:"userName2"`
	ProductID       string    `json:"productId,omitempty"`
	ProductName     string    `json:"productName,omitempty"`
	LastMessage     string    `json:"lastMessage,omitempty"`
	LastMessageTime time.Time `json:"lastMessageTime,omitempty"`
	UnreadCount     int       `json:"unreadCount"`
}

// ChatID derives the chat identity for a user pair. It is symmetric:
// ChatID(a, b) == ChatID(b, a) for all id pairs.
func ChatID(userID1, userID2 string) string {
	ids := []string{userID1, userID2}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// OtherParticipant returns the id and name of the participant that is not
// userID. Falls back to the second participant when userID matches neither.
func (c *Chat) OtherParticipant(userID string) (string, string) {
	if c.UserID1 != userID {
		return c.UserID1, c.UserName1
	}
	return c.UserID2, c.UserName2
}
