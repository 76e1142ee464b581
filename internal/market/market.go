// Package market holds the static datasets the prototype screens present:
// crop listings, regional price trends, chat threads, and profile stats.
// There is no backend; everything a screen shows comes from here.
package market

import (
	"strings"
	"time"
)

// Trend marks whether a crop price moved up or down since yesterday.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// PopularCrop is a regional price-trend entry shown on the dashboard.
type PopularCrop struct {
	Name   string
	Price  string
	Trend  Trend
	Region string
	Icon   string
}

// Listing is a crop offer in the marketplace.
type Listing struct {
	ID          int
	Name        string
	Variety     string
	Price       string
	Quantity    string
	Farmer      string
	Location    string
	Icon        string
	Quality     string
	HarvestDate string
	Description string
}

// Activity is a recent-activity feed entry on the farmer dashboard.
type Activity struct {
	Kind    string // price_alert | chat | listing
	Message string
	Age     string
}

// PopularCrops returns the dashboard price-trend entries.
func PopularCrops() []PopularCrop {
	return []PopularCrop{
		{Name: "Red Chilli (Mirchi)", Price: "₹180/kg", Trend: TrendUp, Region: "Guntur Special", Icon: "🌶️"},
		{Name: "Turmeric", Price: "₹85/kg", Trend: TrendUp, Region: "Nizamabad", Icon: "🟡"},
		{Name: "Cotton", Price: "₹6,200/quintal", Trend: TrendDown, Region: "Warangal", Icon: "🤍"},
		{Name: "Rice (Basmati)", Price: "₹45/kg", Trend: TrendUp, Region: "Krishna Delta", Icon: "🌾"},
		{Name: "Onions", Price: "₹28/kg", Trend: TrendDown, Region: "Kurnool", Icon: "🧅"},
		{Name: "Tomatoes", Price: "₹35/kg", Trend: TrendUp, Region: "Rangareddy", Icon: "🍅"},
	}
}

// RecentActivity returns the farmer dashboard feed.
func RecentActivity() []Activity {
	return []Activity{
		{Kind: "price_alert", Message: "Mirchi prices increased by 5%", Age: "2 hours ago"},
		{Kind: "chat", Message: "New message from buyer in Hyderabad", Age: "4 hours ago"},
		{Kind: "listing", Message: "Your tomato listing got 3 new inquiries", Age: "6 hours ago"},
	}
}

// Listings returns every crop offer in the mock marketplace.
func Listings() []Listing {
	return []Listing{
		{
			ID: 1, Name: "Premium Red Chilli", Variety: "Guntur Sannam",
			Price: "₹180/kg", Quantity: "500 kg", Farmer: "Ramesh Kumar",
			Location: "Guntur, AP", Icon: "🌶️", Quality: "Grade A",
			HarvestDate: "2024-01-15", Description: "Fresh harvest, sun-dried, high spice content",
		},
		{
			ID: 2, Name: "Organic Turmeric", Variety: "Nizamabad Bulb",
			Price: "₹85/kg", Quantity: "200 kg", Farmer: "Lakshmi Devi",
			Location: "Nizamabad, TS", Icon: "🟡", Quality: "Organic",
			HarvestDate: "2024-01-10", Description: "Certified organic, high curcumin content",
		},
		{
			ID: 3, Name: "Basmati Rice", Variety: "Pusa Basmati 1121",
			Price: "₹45/kg", Quantity: "1000 kg", Farmer: "Suresh Reddy",
			Location: "Krishna, AP", Icon: "🌾", Quality: "Premium",
			HarvestDate: "2024-01-12", Description: "Long grain, aromatic, perfect for export",
		},
		{
			ID: 4, Name: "Fresh Tomatoes", Variety: "Hybrid",
			Price: "₹35/kg", Quantity: "300 kg", Farmer: "Prasad Rao",
			Location: "Rangareddy, TS", Icon: "🍅", Quality: "Grade A",
			HarvestDate: "2024-01-18", Description: "Firm, red, perfect for retail",
		},
		{
			ID: 5, Name: "White Onions", Variety: "Bellary Red",
			Price: "₹28/kg", Quantity: "800 kg", Farmer: "Manjula Rani",
			Location: "Kurnool, AP", Icon: "🧅", Quality: "Grade B",
			HarvestDate: "2024-01-14", Description: "Good storage life, medium size",
		},
		{
			ID: 6, Name: "Cotton Bales", Variety: "Bt Cotton",
			Price: "₹6,200/quintal", Quantity: "50 quintals", Farmer: "Venkat Reddy",
			Location: "Warangal, TS", Icon: "🤍", Quality: "Premium",
			HarvestDate: "2024-01-08", Description: "High fiber strength, machine picked",
		},
	}
}

// FilterListings returns the listings whose name, farmer, or location
// contains the term, case-insensitively. An empty term matches everything.
func FilterListings(term string) []Listing {
	all := Listings()
	if term == "" {
		return all
	}
	needle := strings.ToLower(term)
	var out []Listing
	for _, l := range all {
		if strings.Contains(strings.ToLower(l.Name), needle) ||
			strings.Contains(strings.ToLower(l.Farmer), needle) ||
			strings.Contains(strings.ToLower(l.Location), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Greeting returns the time-of-day salutation shown on the dashboard.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
