package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/market"
	"agrilink/internal/session"
)

// ProfilePage shows the signed-in identity over the role's stat block.
type ProfilePage struct {
	styles Styles
	sess   session.Session

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

// NewProfilePage builds the profile screen for the session.
func NewProfilePage(sess session.Session, styles Styles) ProfilePage {
	return ProfilePage{styles: styles, sess: sess}
}

// SetStyles swaps the color scheme.
func (p *ProfilePage) SetStyles(styles Styles) {
	p.styles = styles
	p.refresh()
}

// SetSession updates the identity, e.g. after a role switch.
func (p *ProfilePage) SetSession(sess session.Session) {
	p.sess = sess
	p.refresh()
}

// SetSize updates the rendering area.
func (p *ProfilePage) SetSize(width, height int) {
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

// Update handles scrolling.
func (p ProfilePage) Update(msg tea.Msg) (ProfilePage, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p *ProfilePage) refresh() {
	if !p.ready {
		return
	}
	p.vp.SetContent(p.content())
}

func (p ProfilePage) content() string {
	s := p.styles
	var b strings.Builder

	profile := market.FarmerProfile()
	badge := s.FarmerBadge
	if p.sess.Role == session.RoleBuyer {
		profile = market.BuyerProfile()
		badge = s.BuyerBadge
	}

	b.WriteString(s.Title.Render(fmt.Sprintf("%s %s", p.sess.Role.Icon(), p.sess.Name)))
	b.WriteString("\n")
	b.WriteString(badge.Render(p.sess.Role.Label()))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render(p.sess.Email))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("📍 %s\n", profile.Location))
	b.WriteString(fmt.Sprintf("📅 Member since %s\n", profile.JoinDate))
	b.WriteString(fmt.Sprintf("📞 %s\n", profile.Phone))
	b.WriteString(fmt.Sprintf("⭐ %.1f rating  •  %d completed orders\n\n",
		profile.Rating, profile.CompletedOrders))

	if p.sess.Role == session.RoleFarmer {
		b.WriteString(s.Bold.Render("Farm Details"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Farm size: %s\n", profile.FarmSize))
		b.WriteString(fmt.Sprintf("  Crops: %s\n", strings.Join(profile.Crops, ", ")))
		b.WriteString(fmt.Sprintf("  Total sales: %s\n\n", s.Prompt.Render(profile.TotalSales)))
		b.WriteString(s.Bold.Render("Certifications"))
		b.WriteString("\n")
		for _, cert := range profile.Certifications {
			b.WriteString(fmt.Sprintf("  ✅ %s\n", cert))
		}
	} else {
		b.WriteString(s.Bold.Render("Business Details"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Company: %s\n", profile.Company))
		b.WriteString(fmt.Sprintf("  Type: %s\n", profile.BusinessType))
		b.WriteString(fmt.Sprintf("  Total purchases: %s\n\n", s.Prompt.Render(profile.TotalPurchases)))
		b.WriteString(s.Bold.Render("Verifications"))
		b.WriteString("\n")
		for _, v := range profile.Verifications {
			b.WriteString(fmt.Sprintf("  ✅ %s\n", v))
		}
	}

	return s.Content.Render(b.String())
}

// View renders the profile.
func (p ProfilePage) View() string {
	if !p.ready {
		return ""
	}
	return p.vp.View()
}
