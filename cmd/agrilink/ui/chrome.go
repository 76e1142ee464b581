package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agrilink/internal/session"
)

// RenderTopBar draws the persistent header: brand, market location, and the
// signed-in identity with its role badge.
func RenderTopBar(s Styles, width int, sess session.Session, location string) string {
	brand := "🌱 AgriLink"
	left := fmt.Sprintf("%s  %s", brand, location)

	badge := s.FarmerBadge
	if sess.Role == session.RoleBuyer {
		badge = s.BuyerBadge
	}
	right := fmt.Sprintf("%s %s %s", sess.Role.Icon(), sess.Name, badge.Render(sess.Role.Label()))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return s.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderNavBar draws the bottom navigation with the active screen
// highlighted. The crops tab is labeled for the role: farmers manage
// listings, buyers browse.
func RenderNavBar(s Styles, width int, active Screen, role session.Role) string {
	var items []string
	for _, sc := range ScreenOrder() {
		title := sc.Title()
		if sc == ScreenCrops {
			if role == session.RoleFarmer {
				title = "My Crops"
			} else {
				title = "Browse"
			}
		}
		label := fmt.Sprintf("%s %s", sc.Icon(), title)
		if sc == active {
			items = append(items, s.NavActive.Render(label))
		} else {
			items = append(items, s.NavInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, items...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// RenderKeyHints draws the footer help line.
func RenderKeyHints(s Styles, width int, hints ...string) string {
	return s.Footer.Width(width).Render(strings.Join(hints, " • "))
}
