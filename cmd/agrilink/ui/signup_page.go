package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agrilink/internal/auth"
	"agrilink/internal/logging"
	"agrilink/internal/session"
)

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
	signupFieldCount
)

type signupPhase int

const (
	phaseDetails signupPhase = iota
	phaseRole
)

// SignupPage is the two-phase registration form: account details first, then
// role selection. The flow only moves forward; switching to login discards
// the draft.
type SignupPage struct {
	styles Styles
	authn  *auth.Authenticator

	phase  signupPhase
	inputs [signupFieldCount]textinput.Model
	focus  int
	errors auth.FieldErrors

	role session.Role

	width  int
	height int
}

// NewSignupPage creates the signup form at the details phase.
func NewSignupPage(authn *auth.Authenticator, styles Styles) SignupPage {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64
	password.Width = 32

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 64
	confirm.Width = 32

	return SignupPage{
		styles: styles,
		authn:  authn,
		inputs: [signupFieldCount]textinput.Model{name, email, password, confirm},
		errors: auth.FieldErrors{},
		role:   session.RoleFarmer,
	}
}

// SetStyles swaps the color scheme.
func (p *SignupPage) SetStyles(styles Styles) {
	p.styles = styles
}

// SetSize updates the rendering area.
func (p *SignupPage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles form input for the active phase.
func (p SignupPage) Update(msg tea.Msg) (SignupPage, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if keyMsg.String() == "ctrl+s" {
		return p, Emit(SwitchAuthModeMsg{Mode: AuthModeLogin})
	}

	if p.phase == phaseRole {
		return p.updateRolePhase(keyMsg)
	}
	return p.updateDetailsPhase(keyMsg)
}

func (p SignupPage) updateDetailsPhase(keyMsg tea.KeyMsg) (SignupPage, tea.Cmd) {
	switch keyMsg.String() {
	case "tab", "down":
		p.setFocus((p.focus + 1) % signupFieldCount)
		return p, nil
	case "shift+tab", "up":
		p.setFocus((p.focus + signupFieldCount - 1) % signupFieldCount)
		return p, nil
	case "enter":
		if p.focus < signupFieldCount-1 {
			p.setFocus(p.focus + 1)
			return p, nil
		}
		return p.submitDetails(), nil
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(keyMsg)
	delete(p.errors, p.fieldName(p.focus))

	// The mismatch warning tracks every edit to either password field.
	if p.focus == signupFieldPassword || p.focus == signupFieldConfirm {
		mismatch := auth.MatchPasswords(
			p.inputs[signupFieldPassword].Value(),
			p.inputs[signupFieldConfirm].Value(),
		)
		if mismatch != "" {
			p.errors[auth.FieldConfirmPassword] = mismatch
		} else {
			delete(p.errors, auth.FieldConfirmPassword)
		}
	}
	return p, cmd
}

func (p SignupPage) submitDetails() SignupPage {
	errs := auth.ValidateSignup(
		p.inputs[signupFieldName].Value(),
		strings.TrimSpace(p.inputs[signupFieldEmail].Value()),
		p.inputs[signupFieldPassword].Value(),
		p.inputs[signupFieldConfirm].Value(),
	)
	if !errs.Valid() {
		p.errors = errs
		return p
	}
	p.errors = auth.FieldErrors{}
	p.phase = phaseRole
	return p
}

func (p SignupPage) updateRolePhase(keyMsg tea.KeyMsg) (SignupPage, tea.Cmd) {
	switch keyMsg.String() {
	case "left", "right", "up", "down", "tab":
		p.role = p.role.Other()
		return p, nil
	case "enter":
		sess, err := p.authn.Signup(
			p.inputs[signupFieldName].Value(),
			strings.TrimSpace(p.inputs[signupFieldEmail].Value()),
			p.role,
		)
		if err != nil {
			logging.L().Sugar().Warnw("session not persisted", "error", err)
		}
		return p, Emit(AuthSuccessMsg{Session: sess})
	}
	return p, nil
}

func (p *SignupPage) setFocus(idx int) {
	p.inputs[p.focus].Blur()
	p.focus = idx
	p.inputs[p.focus].Focus()
}

func (p SignupPage) fieldName(idx int) string {
	switch idx {
	case signupFieldName:
		return auth.FieldName
	case signupFieldEmail:
		return auth.FieldEmail
	case signupFieldPassword:
		return auth.FieldPassword
	default:
		return auth.FieldConfirmPassword
	}
}

// View renders the active signup phase.
func (p SignupPage) View() string {
	var body string
	if p.phase == phaseRole {
		body = p.viewRolePhase()
	} else {
		body = p.viewDetailsPhase()
	}
	card := p.styles.Card.Render(body)
	if p.width > 0 && p.height > 0 {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

func (p SignupPage) viewDetailsPhase() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("🌱 AgriLink"))
	b.WriteString("\n")
	b.WriteString(s.Bold.Render("Create Account"))
	b.WriteString("\n\n")

	labels := [signupFieldCount]string{"Name", "Email", "Password", "Confirm Password"}
	fields := [signupFieldCount]string{
		auth.FieldName, auth.FieldEmail, auth.FieldPassword, auth.FieldConfirmPassword,
	}
	for i := 0; i < signupFieldCount; i++ {
		b.WriteString(s.FieldLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(p.inputs[i].View())
		b.WriteString("\n")
		if msg := p.errors[fields[i]]; msg != "" {
			b.WriteString(s.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(s.Muted.Render("Already have an account? Press ctrl+s to log in."))
	return b.String()
}

func (p SignupPage) viewRolePhase() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("🌱 AgriLink"))
	b.WriteString("\n")
	b.WriteString(s.Bold.Render("Choose Your Role"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("How will you use AgriLink?"))
	b.WriteString("\n\n")

	for _, role := range []session.Role{session.RoleFarmer, session.RoleBuyer} {
		marker := "( )"
		style := s.Muted
		if role == p.role {
			marker = "(•)"
			style = s.Prompt
		}
		desc := "Sell your crops directly to buyers"
		if role == session.RoleBuyer {
			desc = "Source quality produce from farmers"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s %s", marker, role.Icon(), role.Label())))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("    " + desc))
		b.WriteString("\n\n")
	}

	b.WriteString(s.Muted.Render("↑/↓ choose • enter confirm"))
	return b.String()
}
