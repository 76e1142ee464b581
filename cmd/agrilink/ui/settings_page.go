package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/config"
	"agrilink/internal/session"
)

const (
	settingDarkMode = iota
	settingSwitchRole
	settingPriceAlerts
	settingNewMessages
	settingTradingUpdates
	settingAutoSync
	settingOfflineMode
	settingSignOut
	settingCount
)

// SettingsPage is the preferences list. Dark mode, role switch, and sign out
// are real; the notification and data toggles are local prototype state.
type SettingsPage struct {
	styles Styles
	role   session.Role
	cursor int

	priceAlerts    bool
	newMessages    bool
	tradingUpdates bool
	autoSync       bool
	offlineMode    bool

	width  int
	height int
}

// NewSettingsPage builds the settings screen.
func NewSettingsPage(role session.Role, styles Styles) SettingsPage {
	return SettingsPage{
		styles:      styles,
		role:        role,
		priceAlerts: true,
		newMessages: true,
		autoSync:    true,
	}
}

// SetStyles swaps the color scheme.
func (p *SettingsPage) SetStyles(styles Styles) {
	p.styles = styles
}

// SetRole updates the role shown on the switch-role row.
func (p *SettingsPage) SetRole(role session.Role) {
	p.role = role
}

// SetSize updates the rendering area.
func (p *SettingsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update moves the cursor and activates rows.
func (p SettingsPage) Update(msg tea.Msg) (SettingsPage, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < settingCount-1 {
			p.cursor++
		}
	case "enter", " ":
		return p.activate()
	}
	return p, nil
}

func (p SettingsPage) activate() (SettingsPage, tea.Cmd) {
	switch p.cursor {
	case settingDarkMode:
		return p, Emit(ToggleThemeMsg{})
	case settingSwitchRole:
		return p, Emit(SwitchRoleMsg{Role: p.role.Other()})
	case settingPriceAlerts:
		p.priceAlerts = !p.priceAlerts
	case settingNewMessages:
		p.newMessages = !p.newMessages
	case settingTradingUpdates:
		p.tradingUpdates = !p.tradingUpdates
	case settingAutoSync:
		p.autoSync = !p.autoSync
	case settingOfflineMode:
		p.offlineMode = !p.offlineMode
	case settingSignOut:
		return p, Emit(LogoutMsg{})
	}
	return p, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// View renders the settings list.
func (p SettingsPage) View() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("⚙️ Settings"))
	b.WriteString("\n")

	type row struct {
		section string
		label   string
		value   string
	}
	rows := [settingCount]row{
		{section: "Appearance", label: "🌙 Dark Mode", value: onOff(s.Theme.IsDark)},
		{label: "🔄 Switch Role", value: "→ " + p.role.Other().Label()},
		{section: "Notifications", label: "💹 Price Alerts", value: onOff(p.priceAlerts)},
		{label: "💬 New Messages", value: onOff(p.newMessages)},
		{label: "📦 Trading Updates", value: onOff(p.tradingUpdates)},
		{section: "Data", label: "☁️ Auto-sync", value: onOff(p.autoSync)},
		{label: "📴 Offline Mode", value: onOff(p.offlineMode)},
		{section: "Account", label: "🚪 Sign Out", value: ""},
	}

	for i, r := range rows {
		if r.section != "" {
			b.WriteString("\n")
			b.WriteString(s.Subtitle.Render(r.section))
			b.WriteString("\n")
		}
		marker := "  "
		labelStyle := s.Body
		if i == p.cursor {
			marker = s.Prompt.Render("▸ ")
			labelStyle = s.Prompt
		}
		if i == settingSignOut {
			labelStyle = s.Error
			if i != p.cursor {
				labelStyle = s.FieldError
			}
		}
		line := fmt.Sprintf("%s%-24s", marker, labelStyle.Render(r.label))
		if r.value != "" {
			line += "  " + s.Muted.Render(r.value)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("AgriLink v" + config.AppVersion))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("↑/↓ select • enter toggle"))

	return s.Content.Render(b.String())
}
