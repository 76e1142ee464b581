package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agrilink/internal/auth"
	"agrilink/internal/logging"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// LoginPage is the email/password form. Submits always succeed once the
// fields validate; there is no credential backend to reject them.
type LoginPage struct {
	styles Styles
	authn  *auth.Authenticator

	inputs [loginFieldCount]textinput.Model
	focus  int
	errors auth.FieldErrors

	width  int
	height int
}

// NewLoginPage creates the login form with the email field focused.
func NewLoginPage(authn *auth.Authenticator, styles Styles) LoginPage {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64
	password.Width = 32

	return LoginPage{
		styles: styles,
		authn:  authn,
		inputs: [loginFieldCount]textinput.Model{email, password},
		errors: auth.FieldErrors{},
	}
}

// SetStyles swaps the color scheme, e.g. after a theme toggle.
func (p *LoginPage) SetStyles(styles Styles) {
	p.styles = styles
}

// SetSize updates the rendering area.
func (p *LoginPage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles form input.
func (p LoginPage) Update(msg tea.Msg) (LoginPage, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		p.setFocus((p.focus + 1) % loginFieldCount)
		return p, nil
	case "shift+tab", "up":
		p.setFocus((p.focus + loginFieldCount - 1) % loginFieldCount)
		return p, nil
	case "ctrl+o":
		p.togglePasswordEcho()
		return p, nil
	case "ctrl+s":
		return p, Emit(SwitchAuthModeMsg{Mode: AuthModeSignup})
	case "enter":
		if p.focus < loginFieldCount-1 {
			p.setFocus(p.focus + 1)
			return p, nil
		}
		return p.submit()
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	// Editing a field clears its stale error.
	delete(p.errors, p.fieldName(p.focus))
	return p, cmd
}

func (p *LoginPage) setFocus(idx int) {
	p.inputs[p.focus].Blur()
	p.focus = idx
	p.inputs[p.focus].Focus()
}

func (p *LoginPage) togglePasswordEcho() {
	pw := &p.inputs[loginFieldPassword]
	if pw.EchoMode == textinput.EchoPassword {
		pw.EchoMode = textinput.EchoNormal
	} else {
		pw.EchoMode = textinput.EchoPassword
	}
}

func (p LoginPage) fieldName(idx int) string {
	if idx == loginFieldEmail {
		return auth.FieldEmail
	}
	return auth.FieldPassword
}

func (p LoginPage) submit() (LoginPage, tea.Cmd) {
	email := strings.TrimSpace(p.inputs[loginFieldEmail].Value())
	password := p.inputs[loginFieldPassword].Value()

	errs := auth.ValidateLogin(email, password)
	if !errs.Valid() {
		p.errors = errs
		return p, nil
	}

	sess, err := p.authn.Login(email)
	if err != nil {
		logging.L().Sugar().Warnw("session not persisted", "error", err)
	}
	return p, Emit(AuthSuccessMsg{Session: sess})
}

// View renders the login card.
func (p LoginPage) View() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("🌱 AgriLink"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Connecting Farmers & Buyers"))
	b.WriteString("\n\n")
	b.WriteString(s.Bold.Render("Welcome Back"))
	b.WriteString("\n\n")

	b.WriteString(s.FieldLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(p.inputs[loginFieldEmail].View())
	b.WriteString("\n")
	if msg := p.errors[auth.FieldEmail]; msg != "" {
		b.WriteString(s.FieldError.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.FieldLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(p.inputs[loginFieldPassword].View())
	b.WriteString("\n")
	if msg := p.errors[auth.FieldPassword]; msg != "" {
		b.WriteString(s.FieldError.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Muted.Render("Don't have an account? Press ctrl+s to sign up."))

	card := s.Card.Render(b.String())
	if p.width > 0 && p.height > 0 {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
