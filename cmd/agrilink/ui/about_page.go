package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"agrilink/internal/config"
	"agrilink/internal/logging"
)

const aboutMarkdown = `# 🌱 AgriLink

**Connecting Farmers & Buyers** — version ` + config.AppVersion + `

AgriLink is a direct farm-to-market trading platform for the Telugu states.
Farmers list their harvest, buyers source quality produce, and both sides
negotiate without middlemen.

## Our Mission

Fair prices for farmers. Fresh produce for buyers. No layers in between.

## Features

- 📈 Live regional price trends for major crops
- 🌾 Crop listings with quality grades and harvest dates
- 💬 Direct chat between farmers and buyers
- 🔔 Price alerts and trading updates

## By the Numbers

| | |
|---|---|
| Farmers onboard | 10,000+ |
| Active buyers | 2,500+ |
| Crops traded | ₹50 Cr+ |
| Districts covered | 26 |

## The Team

Built with ❤️ in Guntur by a small team of engineers and agronomists who
grew up around farms.

---

*Questions? Write to hello@agrilink.example*
`

// AboutPage renders the about text as styled markdown.
type AboutPage struct {
	styles Styles

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

// NewAboutPage builds the about screen.
func NewAboutPage(styles Styles) AboutPage {
	return AboutPage{styles: styles}
}

// SetStyles swaps the color scheme and re-renders the markdown.
func (p *AboutPage) SetStyles(styles Styles) {
	p.styles = styles
	p.refresh()
}

// SetSize updates the rendering area.
func (p *AboutPage) SetSize(width, height int) {
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
func (p AboutPage) Update(msg tea.Msg) (AboutPage, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p *AboutPage) refresh() {
	if !p.ready {
		return
	}

	style := "light"
	if p.styles.Theme.IsDark {
		style = "dark"
	}
	wrap := p.width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		logging.L().Sugar().Warnw("markdown renderer unavailable", "error", err)
		p.vp.SetContent(aboutMarkdown)
		return
	}
	rendered, err := renderer.Render(aboutMarkdown)
	if err != nil {
		logging.L().Sugar().Warnw("markdown render failed", "error", err)
		p.vp.SetContent(aboutMarkdown)
		return
	}
	p.vp.SetContent(rendered)
}

// View renders the about text.
func (p AboutPage) View() string {
	if !p.ready {
		return ""
	}
	return p.vp.View()
}
