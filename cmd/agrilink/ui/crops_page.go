package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"agrilink/internal/market"
	"agrilink/internal/session"
)

// CropsPage is the marketplace browser: a live search box over the crop
// listings. Farmers see it as their shop window, buyers as the catalogue.
type CropsPage struct {
	styles Styles
	role   session.Role

	search textinput.Model
	vp     viewport.Model
	ready  bool
	width  int
	height int
}

// NewCropsPage builds the marketplace screen.
func NewCropsPage(role session.Role, styles Styles) CropsPage {
	search := textinput.New()
	search.Placeholder = "Search crops, farmers, locations..."
	search.Prompt = "🔍 "
	search.CharLimit = 48
	search.Width = 40
	search.Focus()

	return CropsPage{
		styles: styles,
		role:   role,
		search: search,
	}
}

// SetStyles swaps the color scheme.
func (p *CropsPage) SetStyles(styles Styles) {
	p.styles = styles
	p.refresh()
}

// SetRole updates the role-aware heading.
func (p *CropsPage) SetRole(role session.Role) {
	p.role = role
	p.refresh()
}

// SetSize updates the rendering area. The search line takes the top row.
func (p *CropsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	vpHeight := height - 2
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

// Update routes scrolling keys to the viewport and everything else to the
// search box, re-filtering on every edit.
func (p CropsPage) Update(msg tea.Msg) (CropsPage, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			p.vp, cmd = p.vp.Update(msg)
			return p, cmd
		}
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.refresh()
	return p, cmd
}

func (p *CropsPage) refresh() {
	if !p.ready {
		return
	}
	p.vp.SetContent(p.content())
}

func (p CropsPage) content() string {
	s := p.styles
	var b strings.Builder

	heading := "🌾 Available Crops"
	hint := "Message a farmer from the chat screen to place an order."
	if p.role == session.RoleFarmer {
		heading = "🌾 My Crop Listings"
		hint = "Listing crops is coming soon; browse market rates below."
	}
	b.WriteString(s.Title.Render(heading))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(hint))
	b.WriteString("\n\n")

	listings := market.FilterListings(strings.TrimSpace(p.search.Value()))
	if len(listings) == 0 {
		b.WriteString(s.Muted.Render("No crops match your search."))
		return s.Content.Render(b.String())
	}

	for _, l := range listings {
		var card strings.Builder
		card.WriteString(s.Bold.Render(fmt.Sprintf("%s %s", l.Icon, l.Name)))
		card.WriteString(s.Muted.Render("  " + l.Variety))
		card.WriteString("\n")
		card.WriteString(fmt.Sprintf("%s  •  %s available  •  %s\n",
			s.Prompt.Render(l.Price), l.Quantity, s.Success.Render(l.Quality)))
		card.WriteString(fmt.Sprintf("%s %s, %s  •  harvested %s\n",
			"👨‍🌾", l.Farmer, l.Location, l.HarvestDate))
		card.WriteString(s.Muted.Render(l.Description))
		b.WriteString(s.Card.Render(card.String()))
		b.WriteString("\n")
	}

	return s.Content.Render(b.String())
}

// View renders the search line over the listing feed.
func (p CropsPage) View() string {
	if !p.ready {
		return ""
	}
	return p.search.View() + "\n\n" + p.vp.View()
}
