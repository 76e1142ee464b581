package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/auth"
	"agrilink/internal/session"
)

// memStore is a single-slot in-memory session store.
type memStore struct {
	sess *session.Session
}

func (m *memStore) LoadSession() (*session.Session, error) { return m.sess, nil }
func (m *memStore) SaveSession(sess session.Session) error {
	m.sess = &sess
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }

func TestScreenCycleWraps(t *testing.T) {
	order := ScreenOrder()
	sc := order[0]
	for range order {
		sc = sc.Next()
	}
	if sc != order[0] {
		t.Errorf("expected full Next cycle to wrap to %s, got %s", order[0], sc)
	}
	if ScreenDashboard.Prev() != ScreenAbout {
		t.Errorf("expected Prev from first screen to wrap to last")
	}
	if ScreenAbout.Next() != ScreenDashboard {
		t.Errorf("expected Next from last screen to wrap to first")
	}
}

func TestLoginShowsValidationErrors(t *testing.T) {
	p := NewLoginPage(auth.New(&memStore{}), NewStyles(LightTheme()))

	// Enter on the email field moves focus; enter on the password submits.
	p, _ = p.Update(keyEnter())
	p, cmd := p.Update(keyEnter())
	if cmd != nil {
		t.Fatalf("expected no command on invalid submit")
	}

	view := p.View()
	if !strings.Contains(view, "Email is required") {
		t.Errorf("expected email error in view")
	}
	if !strings.Contains(view, "Password is required") {
		t.Errorf("expected password error in view")
	}
}

func TestLoginSubmitEmitsAuthSuccess(t *testing.T) {
	p := NewLoginPage(auth.New(&memStore{}), NewStyles(LightTheme()))

	p, _ = p.Update(keyRunes("asha@farm.example"))
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("secret"))
	_, cmd := p.Update(keyEnter())
	if cmd == nil {
		t.Fatalf("expected a command from a valid submit")
	}

	msg, ok := cmd().(AuthSuccessMsg)
	if !ok {
		t.Fatalf("expected AuthSuccessMsg, got %T", cmd())
	}
	if msg.Session.Name != "Asha" {
		t.Errorf("expected derived name Asha, got %q", msg.Session.Name)
	}
	if msg.Session.Role != session.RoleFarmer {
		t.Errorf("expected synthesized farmer role, got %q", msg.Session.Role)
	}
}

func TestLoginSwitchesToSignup(t *testing.T) {
	p := NewLoginPage(auth.New(&memStore{}), NewStyles(LightTheme()))

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(SwitchAuthModeMsg)
	if !ok || msg.Mode != AuthModeSignup {
		t.Errorf("expected switch to signup, got %#v", cmd())
	}
}

func TestSignupLiveMismatchWarning(t *testing.T) {
	p := NewSignupPage(auth.New(&memStore{}), NewStyles(LightTheme()))

	// Jump to the password field, then the confirm field.
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("secret1"))
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("secret2"))

	if !strings.Contains(p.View(), "Passwords do not match") {
		t.Errorf("expected live mismatch warning")
	}

	// Fixing the confirm field clears the warning without a submit.
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	p, _ = p.Update(keyRunes("1"))
	if strings.Contains(p.View(), "Passwords do not match") {
		t.Errorf("expected mismatch warning to clear")
	}
}

func TestSignupTwoPhaseFlow(t *testing.T) {
	st := &memStore{}
	p := NewSignupPage(auth.New(st), NewStyles(LightTheme()))

	p, _ = p.Update(keyRunes("Asha Rao"))
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("asha@farm.example"))
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("secret1"))
	p, _ = p.Update(keyEnter())
	p, _ = p.Update(keyRunes("secret1"))
	p, _ = p.Update(keyEnter())

	if !strings.Contains(p.View(), "Choose Your Role") {
		t.Fatalf("expected role phase after valid details")
	}

	// Toggle to buyer, then confirm.
	p, _ = p.Update(keyDown())
	_, cmd := p.Update(keyEnter())
	if cmd == nil {
		t.Fatalf("expected a command from role confirm")
	}
	msg, ok := cmd().(AuthSuccessMsg)
	if !ok {
		t.Fatalf("expected AuthSuccessMsg, got %T", cmd())
	}
	if msg.Session.Role != session.RoleBuyer {
		t.Errorf("expected buyer role, got %q", msg.Session.Role)
	}
	if st.sess == nil || st.sess.Name != "Asha Rao" {
		t.Errorf("expected session persisted at signup")
	}
}

func TestSignupInvalidDetailsStay(t *testing.T) {
	p := NewSignupPage(auth.New(&memStore{}), NewStyles(LightTheme()))

	for i := 0; i < 4; i++ {
		p, _ = p.Update(keyEnter())
	}
	view := p.View()
	if strings.Contains(view, "Choose Your Role") {
		t.Fatalf("expected details phase to hold on invalid submit")
	}
	if !strings.Contains(view, "Name is required") {
		t.Errorf("expected name error in view")
	}
}

func TestDashboardGreeting(t *testing.T) {
	sess := session.Session{Name: "Asha", Email: "asha@farm.example", Role: session.RoleFarmer}
	p := NewDashboardPage(sess, NewStyles(LightTheme()))
	p.SetSize(80, 24)
	p.SetNow(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))

	view := p.View()
	if !strings.Contains(view, "Good Morning, Asha") {
		t.Errorf("expected morning greeting, got:\n%s", view)
	}
	if !strings.Contains(view, "Market Trends") {
		t.Errorf("expected market trends section")
	}
	if !strings.Contains(view, "Recent Activity") {
		t.Errorf("expected farmer activity feed")
	}

	// Buyers get no activity feed.
	p.SetSession(session.Session{Name: "Asha", Email: "asha@farm.example", Role: session.RoleBuyer})
	if strings.Contains(p.View(), "Recent Activity") {
		t.Errorf("expected no activity feed for buyers")
	}
}

func TestCropsSearchFilters(t *testing.T) {
	p := NewCropsPage(session.RoleBuyer, NewStyles(LightTheme()))
	p.SetSize(80, 24)

	if !strings.Contains(p.View(), "Premium Red Chilli") {
		t.Fatalf("expected full listing feed before searching")
	}

	p, _ = p.Update(keyRunes("turmeric"))
	view := p.View()
	if !strings.Contains(view, "Organic Turmeric") {
		t.Errorf("expected turmeric listing in filtered view")
	}
	if strings.Contains(view, "Basmati Rice") {
		t.Errorf("expected other listings filtered out")
	}

	p, _ = p.Update(keyRunes("zzz"))
	if !strings.Contains(p.View(), "No crops match") {
		t.Errorf("expected empty-result message")
	}
}

func TestChatOpenRoomAndSend(t *testing.T) {
	p := NewChatPage(NewStyles(LightTheme()))
	p.SetSize(80, 24)

	if !strings.Contains(p.View(), "Ramesh Kumar") {
		t.Fatalf("expected room list")
	}

	p, _ = p.Update(keyEnter())
	if !strings.Contains(p.View(), "fresh tomatoes") {
		t.Fatalf("expected seeded conversation after opening room")
	}

	p, _ = p.Update(keyRunes("Deal at 180?"))
	p, _ = p.Update(keyEnter())
	if !strings.Contains(p.View(), "Deal at 180?") {
		t.Errorf("expected sent message in conversation")
	}

	// Esc returns to the room list.
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(p.View(), "Agri Foods Ltd") {
		t.Errorf("expected room list after esc")
	}
}

func TestSettingsEmitsIntents(t *testing.T) {
	p := NewSettingsPage(session.RoleFarmer, NewStyles(LightTheme()))
	p.SetSize(80, 24)

	// First row is the theme toggle.
	_, cmd := p.Update(keyEnter())
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if _, ok := cmd().(ToggleThemeMsg); !ok {
		t.Errorf("expected ToggleThemeMsg, got %T", cmd())
	}

	// Second row switches role.
	p, _ = p.Update(keyDown())
	_, cmd = p.Update(keyEnter())
	msg, ok := cmd().(SwitchRoleMsg)
	if !ok || msg.Role != session.RoleBuyer {
		t.Errorf("expected SwitchRoleMsg to buyer, got %#v", cmd())
	}

	// Last row signs out.
	for i := 0; i < settingCount; i++ {
		p, _ = p.Update(keyDown())
	}
	_, cmd = p.Update(keyEnter())
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Errorf("expected LogoutMsg, got %#v", cmd())
	}
}

func TestProfileFollowsRole(t *testing.T) {
	sess := session.Session{Name: "Asha", Email: "asha@farm.example", Role: session.RoleFarmer}
	p := NewProfilePage(sess, NewStyles(LightTheme()))
	p.SetSize(80, 24)

	if !strings.Contains(p.View(), "Farm Details") {
		t.Errorf("expected farmer stat block")
	}

	sess.Role = session.RoleBuyer
	p.SetSession(sess)
	view := p.View()
	if !strings.Contains(view, "Business Details") {
		t.Errorf("expected buyer stat block after role switch")
	}
	if strings.Contains(view, "Farm Details") {
		t.Errorf("expected farmer block replaced")
	}
}

func TestAboutRendersMarkdown(t *testing.T) {
	p := NewAboutPage(NewStyles(DarkTheme()))
	p.SetSize(80, 24)

	view := p.View()
	if !strings.Contains(view, "AgriLink") {
		t.Errorf("expected about content")
	}
}

func TestNavBarHighlightsActive(t *testing.T) {
	s := NewStyles(LightTheme())
	bar := RenderNavBar(s, 100, ScreenChat, session.RoleBuyer)
	for _, sc := range ScreenOrder() {
		if sc == ScreenCrops {
			continue
		}
		if !strings.Contains(bar, sc.Title()) {
			t.Errorf("expected %s in nav bar", sc.Title())
		}
	}
	if !strings.Contains(bar, "Browse") {
		t.Errorf("expected buyer crops label")
	}

	farmerBar := RenderNavBar(s, 100, ScreenChat, session.RoleFarmer)
	if !strings.Contains(farmerBar, "My Crops") {
		t.Errorf("expected farmer crops label")
	}
}

func TestTopBarShowsIdentity(t *testing.T) {
	s := NewStyles(LightTheme())
	sess := session.Session{Name: "Asha Rao", Email: "asha@farm.example", Role: session.RoleBuyer}
	top := RenderTopBar(s, 100, sess, "Guntur, AP")
	if !strings.Contains(top, "Asha Rao") {
		t.Errorf("expected user name in top bar")
	}
	if !strings.Contains(top, "Buyer") {
		t.Errorf("expected role badge in top bar")
	}
	if !strings.Contains(top, "Guntur, AP") {
		t.Errorf("expected market location in top bar")
	}
}
