package market

import (
	"time"

	"github.com/google/uuid"

	"agrilink/internal/session"
)

// Room is a chat thread with another marketplace user.
type Room struct {
	ID          string
	Name        string
	Role        session.Role
	LastMessage string
	Timestamp   string
	Unread      int
	Avatar      string
	Online      bool
}

// Message is a single chat entry inside a room.
type Message struct {
	ID        string
	Sender    string
	Content   string
	Timestamp string
	IsOwn     bool
}

// Rooms returns the mock chat thread list.
func Rooms() []Room {
	return []Room{
		{
			ID: "1", Name: "Ramesh Kumar", Role: session.RoleFarmer,
			LastMessage: "The tomatoes are ready for harvest",
			Timestamp:   "10:30 AM", Unread: 2, Avatar: "👨‍🌾", Online: true,
		},
		{
			ID: "2", Name: "Agri Foods Ltd", Role: session.RoleBuyer,
			LastMessage: "Can you deliver 500kg by Friday?",
			Timestamp:   "9:15 AM", Unread: 0, Avatar: "🏢", Online: false,
		},
		{
			ID: "3", Name: "Lakshmi Devi", Role: session.RoleFarmer,
			LastMessage: "Voice message",
			Timestamp:   "Yesterday", Unread: 1, Avatar: "👩‍🌾", Online: true,
		},
	}
}

// SeedConversation returns the starting message history for a room.
func SeedConversation() []Message {
	return []Message{
		{ID: "1", Sender: "Ramesh Kumar", Content: "Hello! I have fresh tomatoes available.", Timestamp: "10:00 AM"},
		{ID: "2", Sender: "You", Content: "What quantity do you have available?", Timestamp: "10:05 AM", IsOwn: true},
		{ID: "3", Sender: "Ramesh Kumar", Content: "Around 300kg of Grade A tomatoes", Timestamp: "10:10 AM"},
		{ID: "4", Sender: "Ramesh Kumar", Content: "The tomatoes are ready for harvest", Timestamp: "10:30 AM"},
	}
}

// NewMessage builds an outgoing chat message stamped with the wall clock.
func NewMessage(content string, now time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    "You",
		Content:   content,
		Timestamp: now.Format("3:04 PM"),
		IsOwn:     true,
	}
}
