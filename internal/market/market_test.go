package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilterListingsEmptyTermMatchesAll(t *testing.T) {
	require.Equal(t, Listings(), FilterListings(""))
}

func TestFilterListingsByName(t *testing.T) {
	got := FilterListings("chilli")
	require.Len(t, got, 1)
	require.Equal(t, "Premium Red Chilli", got[0].Name)
}

func TestFilterListingsByFarmer(t *testing.T) {
	got := FilterListings("lakshmi")
	require.Len(t, got, 1)
	require.Equal(t, "Organic Turmeric", got[0].Name)
}

func TestFilterListingsByLocation(t *testing.T) {
	got := FilterListings("TS")
	require.Len(t, got, 3)
}

func TestFilterListingsCaseInsensitive(t *testing.T) {
	require.Equal(t, FilterListings("GUNTUR"), FilterListings("guntur"))
	require.NotEmpty(t, FilterListings("GUNTUR"))
}

func TestFilterListingsNoMatch(t *testing.T) {
	require.Empty(t, FilterListings("durian"))
}

func TestGreetingBoundaries(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
	}
	require.Equal(t, "Good Morning", Greeting(at(0, 0)))
	require.Equal(t, "Good Morning", Greeting(at(11, 59)))
	require.Equal(t, "Good Afternoon", Greeting(at(12, 0)))
	require.Equal(t, "Good Afternoon", Greeting(at(16, 59)))
	require.Equal(t, "Good Evening", Greeting(at(17, 0)))
	require.Equal(t, "Good Evening", Greeting(at(23, 59)))
}

func TestNewMessage(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 5, 0, 0, time.UTC)
	msg := NewMessage("hello", now)
	require.NotEmpty(t, msg.ID)
	require.Equal(t, "You", msg.Sender)
	require.Equal(t, "hello", msg.Content)
	require.Equal(t, "2:05 PM", msg.Timestamp)
	require.True(t, msg.IsOwn)

	// IDs are unique per message.
	other := NewMessage("hello", now)
	require.NotEqual(t, msg.ID, other.ID)
}

func TestProfilesMatchRoles(t *testing.T) {
	farmer := FarmerProfile()
	require.NotEmpty(t, farmer.FarmSize)
	require.Empty(t, farmer.Company)

	buyer := BuyerProfile()
	require.NotEmpty(t, buyer.Company)
	require.Empty(t, buyer.FarmSize)
}
