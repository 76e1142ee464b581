package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/cmd/agrilink/ui"
	"agrilink/internal/auth"
	"agrilink/internal/config"
	"agrilink/internal/logging"
	"agrilink/internal/session"
	"agrilink/internal/store"
)

type appState int

const (
	stateAuth appState = iota
	stateMain
)

// clockTickMsg carries the minute tick that keeps the dashboard greeting
// current.
type clockTickMsg time.Time

// appModel is the top-level bubbletea model: the state machine over the
// unauthenticated forms and the authenticated screens. Pages never talk to
// each other; they emit ui intent messages and the shell applies them here.
type appModel struct {
	cfg    config.Config
	st     *store.Store
	authn  *auth.Authenticator
	styles ui.Styles

	state    appState
	authMode ui.AuthMode
	sess     session.Session
	screen   ui.Screen

	login  ui.LoginPage
	signup ui.SignupPage

	dashboard ui.DashboardPage
	crops     ui.CropsPage
	chat      ui.ChatPage
	profile   ui.ProfilePage
	settings  ui.SettingsPage
	about     ui.AboutPage

	width  int
	height int
}

// newAppModel restores persisted state and decides the starting screen: a
// valid stored session skips the login form entirely.
func newAppModel(cfg config.Config, st *store.Store) appModel {
	// Stored theme preference wins; ambient detection is only the fallback.
	theme := ui.DetectTheme()
	if dark, err := st.LoadTheme(); err != nil {
		logging.L().Sugar().Warnw("could not read theme preference", "error", err)
	} else if dark != nil {
		theme = ui.ThemeFor(*dark)
	}
	styles := ui.NewStyles(theme)

	authn := auth.New(st)
	m := appModel{
		cfg:      cfg,
		st:       st,
		authn:    authn,
		styles:   styles,
		state:    stateAuth,
		authMode: ui.AuthModeLogin,
		screen:   ui.ScreenDashboard,
		login:    ui.NewLoginPage(authn, styles),
		signup:   ui.NewSignupPage(authn, styles),
	}

	if sess, err := st.LoadSession(); err != nil {
		logging.L().Sugar().Warnw("could not read stored session", "error", err)
	} else if sess != nil {
		m.enterMain(*sess)
	}
	return m
}

// Init starts the cursor blink and the greeting clock.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, minuteTick())
}

func minuteTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update is the shell's event loop.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case clockTickMsg:
		m.dashboard.SetNow(time.Time(msg))
		return m, minuteTick()

	case ui.AuthSuccessMsg:
		m.enterMain(msg.Session)
		m.layout()
		return m, nil

	case ui.SwitchAuthModeMsg:
		// The abandoned form's draft is discarded, errors included.
		m.authMode = msg.Mode
		m.login = ui.NewLoginPage(m.authn, m.styles)
		m.signup = ui.NewSignupPage(m.authn, m.styles)
		m.layout()
		return m, nil

	case ui.NavigateMsg:
		m.screen = msg.Screen
		return m, nil

	case ui.SwitchRoleMsg:
		m.sess.Role = msg.Role
		if err := m.st.SaveSession(m.sess); err != nil {
			logging.L().Sugar().Warnw("could not persist role switch", "error", err)
		}
		m.propagateSession()
		return m, nil

	case ui.ToggleThemeMsg:
		dark := !m.styles.Theme.IsDark
		m.styles = ui.NewStyles(ui.ThemeFor(dark))
		if err := m.st.SaveTheme(dark); err != nil {
			logging.L().Sugar().Warnw("could not persist theme", "error", err)
		}
		m.propagateStyles()
		return m, nil

	case ui.LogoutMsg:
		if err := m.st.ClearSession(); err != nil {
			logging.L().Sugar().Warnw("could not clear stored session", "error", err)
		}
		logging.L().Sugar().Infow("signed out", "email", m.sess.Email)
		m.state = stateAuth
		m.authMode = ui.AuthModeLogin
		m.sess = session.Session{}
		m.login = ui.NewLoginPage(m.authn, m.styles)
		m.signup = ui.NewSignupPage(m.authn, m.styles)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m.Update(ui.ToggleThemeMsg{})
		}
		if m.state == stateMain {
			switch msg.String() {
			case "tab":
				m.screen = m.screen.Next()
				return m, nil
			case "shift+tab":
				m.screen = m.screen.Prev()
				return m, nil
			case "ctrl+b":
				return m.Update(ui.SwitchRoleMsg{Role: m.sess.Role.Other()})
			}
		}
	}

	return m.forward(msg)
}

// forward routes a message to the active page.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state == stateAuth {
		if m.authMode == ui.AuthModeSignup {
			m.signup, cmd = m.signup.Update(msg)
		} else {
			m.login, cmd = m.login.Update(msg)
		}
		return m, cmd
	}

	switch m.screen {
	case ui.ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ui.ScreenCrops:
		m.crops, cmd = m.crops.Update(msg)
	case ui.ScreenChat:
		m.chat, cmd = m.chat.Update(msg)
	case ui.ScreenProfile:
		m.profile, cmd = m.profile.Update(msg)
	case ui.ScreenSettings:
		m.settings, cmd = m.settings.Update(msg)
	case ui.ScreenAbout:
		m.about, cmd = m.about.Update(msg)
	}
	return m, cmd
}

// enterMain builds the authenticated screens fresh for the session and lands
// on the dashboard.
func (m *appModel) enterMain(sess session.Session) {
	m.state = stateMain
	m.sess = sess
	m.screen = ui.ScreenDashboard
	m.dashboard = ui.NewDashboardPage(sess, m.styles)
	m.crops = ui.NewCropsPage(sess.Role, m.styles)
	m.chat = ui.NewChatPage(m.styles)
	m.profile = ui.NewProfilePage(sess, m.styles)
	m.settings = ui.NewSettingsPage(sess.Role, m.styles)
	m.about = ui.NewAboutPage(m.styles)
	logging.L().Sugar().Infow("session active", "email", sess.Email, "role", sess.Role)
}

func (m *appModel) propagateSession() {
	m.dashboard.SetSession(m.sess)
	m.crops.SetRole(m.sess.Role)
	m.profile.SetSession(m.sess)
	m.settings.SetRole(m.sess.Role)
}

func (m *appModel) propagateStyles() {
	m.login.SetStyles(m.styles)
	m.signup.SetStyles(m.styles)
	if m.state == stateMain {
		m.dashboard.SetStyles(m.styles)
		m.crops.SetStyles(m.styles)
		m.chat.SetStyles(m.styles)
		m.profile.SetStyles(m.styles)
		m.settings.SetStyles(m.styles)
		m.about.SetStyles(m.styles)
	}
}

// layout pushes the window size down to every constructed page. Auth forms
// get the full window; screens lose three rows to the chrome.
func (m *appModel) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.login.SetSize(m.width, m.height)
	m.signup.SetSize(m.width, m.height)

	if m.state != stateMain {
		return
	}
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.dashboard.SetSize(m.width, contentHeight)
	m.crops.SetSize(m.width, contentHeight)
	m.chat.SetSize(m.width, contentHeight)
	m.profile.SetSize(m.width, contentHeight)
	m.settings.SetSize(m.width, contentHeight)
	m.about.SetSize(m.width, contentHeight)
}

// View renders the chrome around the active page.
func (m appModel) View() string {
	if m.state == stateAuth {
		if m.authMode == ui.AuthModeSignup {
			return m.signup.View()
		}
		return m.login.View()
	}

	top := ui.RenderTopBar(m.styles, m.width, m.sess, m.cfg.Location)
	nav := ui.RenderNavBar(m.styles, m.width, m.screen, m.sess.Role)
	hints := ui.RenderKeyHints(m.styles, m.width,
		"tab next screen", "ctrl+t theme", "ctrl+b switch role", "ctrl+c quit")

	var content string
	switch m.screen {
	case ui.ScreenDashboard:
		content = m.dashboard.View()
	case ui.ScreenCrops:
		content = m.crops.View()
	case ui.ScreenChat:
		content = m.chat.View()
	case ui.ScreenProfile:
		content = m.profile.View()
	case ui.ScreenSettings:
		content = m.settings.View()
	case ui.ScreenAbout:
		content = m.about.View()
	}

	return top + "\n" + content + "\n" + nav + "\n" + hints
}
