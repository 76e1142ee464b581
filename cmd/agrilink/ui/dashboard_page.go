package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/market"
	"agrilink/internal/session"
)

// DashboardPage is the home screen: greeting, market trends, and role-aware
// quick actions. The greeting clock is fed by the shell's minute tick.
type DashboardPage struct {
	styles Styles
	sess   session.Session
	now    time.Time

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

// NewDashboardPage builds the dashboard for the signed-in session.
func NewDashboardPage(sess session.Session, styles Styles) DashboardPage {
	return DashboardPage{
		styles: styles,
		sess:   sess,
		now:    time.Now(),
	}
}

// SetStyles swaps the color scheme.
func (p *DashboardPage) SetStyles(styles Styles) {
	p.styles = styles
	p.refresh()
}

// SetSession updates the identity, e.g. after a role switch.
func (p *DashboardPage) SetSession(sess session.Session) {
	p.sess = sess
	p.refresh()
}

// SetNow advances the greeting clock.
func (p *DashboardPage) SetNow(now time.Time) {
	p.now = now
	p.refresh()
}

// SetSize updates the rendering area.
func (p *DashboardPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	if !p.ready {
		p.vp = viewport.New(width, height)
		p.ready = true
	} else {
		p.vp.Width = width
		p.vp.Height = height
	}
	p.refresh()
}

// Update handles scrolling and quick-action shortcuts.
func (p DashboardPage) Update(msg tea.Msg) (DashboardPage, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "c":
			return p, Emit(NavigateMsg{Screen: ScreenCrops})
		case "m":
			return p, Emit(NavigateMsg{Screen: ScreenChat})
		}
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p *DashboardPage) refresh() {
	if !p.ready {
		return
	}
	p.vp.SetContent(p.content())
}

func (p DashboardPage) content() string {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(fmt.Sprintf("%s, %s! %s",
		market.Greeting(p.now), p.sess.Name, p.sess.Role.Icon())))
	b.WriteString("\n")
	if p.sess.Role == session.RoleFarmer {
		b.WriteString(s.Subtitle.Render("Here's what's happening with your crops today"))
	} else {
		b.WriteString(s.Subtitle.Render("Fresh produce is waiting for you"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.Bold.Render("📈 Market Trends"))
	b.WriteString("\n")
	trends := market.PopularCrops()
	if len(trends) > 4 {
		trends = trends[:4]
	}
	for _, crop := range trends {
		arrow := s.TrendUp.Render("▲")
		if crop.Trend == market.TrendDown {
			arrow = s.TrendDn.Render("▼")
		}
		b.WriteString(fmt.Sprintf("  %s %-22s %10s %s  %s\n",
			crop.Icon, crop.Name, crop.Price, arrow, s.Muted.Render(crop.Region)))
	}
	b.WriteString("\n")

	if p.sess.Role == session.RoleFarmer {
		b.WriteString(s.Bold.Render("🔔 Recent Activity"))
		b.WriteString("\n")
		for _, act := range market.RecentActivity() {
			icon := "📋"
			switch act.Kind {
			case "price_alert":
				icon = "💹"
			case "chat":
				icon = "💬"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				icon, act.Message, s.Muted.Render("("+act.Age+")")))
		}
		b.WriteString("\n")
		b.WriteString(s.Bold.Render("Quick Actions"))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("  c  list your crops    m  buyer inquiries"))
	} else {
		b.WriteString(s.Bold.Render("Quick Actions"))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("  c  browse crops    m  message farmers"))
	}

	return s.Content.Render(b.String())
}

// View renders the dashboard.
func (p DashboardPage) View() string {
	if !p.ready {
		return ""
	}
	return p.vp.View()
}
