package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/session"
)

// Screen identifies one of the authenticated screens. Navigation is flat:
// the shell holds exactly one Screen and there is no history stack.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenCrops     Screen = "crops"
	ScreenChat      Screen = "chat"
	ScreenProfile   Screen = "profile"
	ScreenSettings  Screen = "settings"
	ScreenAbout     Screen = "about"
)

// ScreenOrder is the bottom-nav ordering, also used for tab cycling.
func ScreenOrder() []Screen {
	return []Screen{
		ScreenDashboard,
		ScreenCrops,
		ScreenChat,
		ScreenProfile,
		ScreenSettings,
		ScreenAbout,
	}
}

// Next returns the screen after s in nav order, wrapping around.
func (s Screen) Next() Screen {
	order := ScreenOrder()
	for i, sc := range order {
		if sc == s {
			return order[(i+1)%len(order)]
		}
	}
	return ScreenDashboard
}

// Prev returns the screen before s in nav order, wrapping around.
func (s Screen) Prev() Screen {
	order := ScreenOrder()
	for i, sc := range order {
		if sc == s {
			return order[(i-1+len(order))%len(order)]
		}
	}
	return ScreenDashboard
}

// Title returns the label shown in the bottom nav.
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Home"
	case ScreenCrops:
		return "Crops"
	case ScreenChat:
		return "Chat"
	case ScreenProfile:
		return "Profile"
	case ScreenSettings:
		return "Settings"
	case ScreenAbout:
		return "About"
	default:
		return string(s)
	}
}

// Icon returns the emoji shown in the bottom nav.
func (s Screen) Icon() string {
	switch s {
	case ScreenDashboard:
		return "🏠"
	case ScreenCrops:
		return "🌾"
	case ScreenChat:
		return "💬"
	case ScreenProfile:
		return "👤"
	case ScreenSettings:
		return "⚙️"
	case ScreenAbout:
		return "ℹ️"
	default:
		return "•"
	}
}

// AuthMode selects which unauthenticated form is showing.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// Intent messages emitted by pages and consumed by the app shell. Pages
// never mutate shell state directly; they return one of these as a tea.Cmd.
type (
	// AuthSuccessMsg carries a freshly authenticated session.
	AuthSuccessMsg struct{ Session session.Session }

	// SwitchAuthModeMsg flips between the login and signup forms. The
	// abandoned form's draft is discarded by the shell.
	SwitchAuthModeMsg struct{ Mode AuthMode }

	// NavigateMsg replaces the active screen.
	NavigateMsg struct{ Screen Screen }

	// SwitchRoleMsg changes the session role in place.
	SwitchRoleMsg struct{ Role session.Role }

	// ToggleThemeMsg flips dark mode.
	ToggleThemeMsg struct{}

	// LogoutMsg ends the session and returns to the login form.
	LogoutMsg struct{}
)

// Emit wraps an intent message as a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
