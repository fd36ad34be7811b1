package models

import "time"

// Message is one chat message. Messages are immutable once created: never
// edited, never deleted. Ordering within a chat is by Timestamp ascending.
type Message struct {
	ID           string    `json:"id"`
	ChatID       string    `json:"chatId"`
	SenderID     string    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   string    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"productId,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
}
