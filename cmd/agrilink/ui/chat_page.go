package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/market"
)

// ChatPage shows the thread list and, once a room is opened, its
// conversation with a compose box. Messages live in memory only.
type ChatPage struct {
	styles Styles

	rooms  []market.Room
	cursor int

	// conversations is lazily seeded per room on first open.
	conversations map[string][]market.Message
	activeRoom    string

	vp      viewport.Model
	compose textinput.Model
	ready   bool
	width   int
	height  int
}

// NewChatPage builds the chat screen at the room list.
func NewChatPage(styles Styles) ChatPage {
	compose := textinput.New()
	compose.Placeholder = "Type a message..."
	compose.Prompt = "✏️  "
	compose.CharLimit = 240
	compose.Width = 40

	return ChatPage{
		styles:        styles,
		rooms:         market.Rooms(),
		conversations: make(map[string][]market.Message),
		compose:       compose,
	}
}

// SetStyles swaps the color scheme.
func (p *ChatPage) SetStyles(styles Styles) {
	p.styles = styles
	p.refresh()
}

// SetSize updates the rendering area.
func (p *ChatPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	vpHeight := height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !p.ready {
		p.vp = viewport.New(width, vpHeight)
		p.ready = true
	} else {
		p.vp.Width = width
		p.vp.Height = vpHeight
	}
	p.refresh()
}

// Update handles room selection and message composition.
func (p ChatPage) Update(msg tea.Msg) (ChatPage, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.activeRoom == "" {
		return p.updateRoomList(keyMsg), nil
	}
	return p.updateConversation(keyMsg)
}

func (p ChatPage) updateRoomList(keyMsg tea.KeyMsg) ChatPage {
	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.rooms)-1 {
			p.cursor++
		}
	case "enter":
		room := p.rooms[p.cursor]
		if _, ok := p.conversations[room.ID]; !ok {
			p.conversations[room.ID] = market.SeedConversation()
		}
		p.activeRoom = room.ID
		p.rooms[p.cursor].Unread = 0
		p.compose.Focus()
		p.refresh()
		p.vp.GotoBottom()
	}
	return p
}

func (p ChatPage) updateConversation(keyMsg tea.KeyMsg) (ChatPage, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		p.activeRoom = ""
		p.compose.Blur()
		p.compose.SetValue("")
		return p, nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		p.vp, cmd = p.vp.Update(keyMsg)
		return p, cmd
	case "enter":
		content := strings.TrimSpace(p.compose.Value())
		if content == "" {
			return p, nil
		}
		p.conversations[p.activeRoom] = append(
			p.conversations[p.activeRoom], market.NewMessage(content, time.Now()))
		p.compose.SetValue("")
		p.refresh()
		p.vp.GotoBottom()
		return p, nil
	}

	var cmd tea.Cmd
	p.compose, cmd = p.compose.Update(keyMsg)
	return p, cmd
}

func (p *ChatPage) refresh() {
	if !p.ready {
		return
	}
	if p.activeRoom == "" {
		p.vp.SetContent(p.roomListContent())
	} else {
		p.vp.SetContent(p.conversationContent())
	}
}

func (p ChatPage) roomListContent() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("💬 Messages"))
	b.WriteString("\n")

	for i, room := range p.rooms {
		marker := "  "
		nameStyle := s.Bold
		if i == p.cursor {
			marker = s.Prompt.Render("▸ ")
			nameStyle = s.Prompt
		}
		presence := ""
		if room.Online {
			presence = s.Success.Render(" ●")
		}
		unread := ""
		if room.Unread > 0 {
			unread = "  " + s.Badge.Render(fmt.Sprintf("%d", room.Unread))
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s%s\n",
			marker, room.Avatar, nameStyle.Render(room.Name), presence, unread))
		b.WriteString(fmt.Sprintf("    %s  %s\n\n",
			s.Muted.Render(room.LastMessage), s.Muted.Render(room.Timestamp)))
	}

	return s.Content.Render(b.String())
}

func (p ChatPage) conversationContent() string {
	s := p.styles
	var b strings.Builder

	room := p.roomByID(p.activeRoom)
	title := "💬 Chat"
	if room != nil {
		title = fmt.Sprintf("%s %s", room.Avatar, room.Name)
		if room.Online {
			title += s.Success.Render(" ● online")
		}
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	for _, msg := range p.conversations[p.activeRoom] {
		bubble := s.BubbleOther
		line := fmt.Sprintf("%s  %s", msg.Content, msg.Timestamp)
		if msg.IsOwn {
			bubble = s.BubbleOwn
		}
		b.WriteString(bubble.Render(line))
		b.WriteString("\n")
	}

	return s.Content.Render(b.String())
}

func (p ChatPage) roomByID(id string) *market.Room {
	for i := range p.rooms {
		if p.rooms[i].ID == id {
			return &p.rooms[i]
		}
	}
	return nil
}

// View renders either the room list or the open conversation.
func (p ChatPage) View() string {
	if !p.ready {
		return ""
	}
	if p.activeRoom == "" {
		return p.vp.View() + "\n" + p.styles.Muted.Render("  ↑/↓ select • enter open")
	}
	return p.vp.View() + "\n" + p.compose.View() + "\n" +
		p.styles.Muted.Render("  enter send • esc back")
}
