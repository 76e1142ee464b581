package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"agrilink/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "agrilink.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// Nothing stored yet.
	sess, err := s.LoadSession()
	require.NoError(t, err)
	require.Nil(t, sess)

	want := session.Session{Name: "Asha Rao", Email: "asha@farm.example", Role: session.RoleBuyer}
	require.NoError(t, s.SaveSession(want))

	got, err := s.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestSaveSessionOverwrites(t *testing.T) {
	s := openTestStore(t)

	first := session.Session{Name: "Asha", Email: "asha@farm.example", Role: session.RoleFarmer}
	require.NoError(t, s.SaveSession(first))

	// A role switch re-persists the same identity with the new role.
	first.Role = session.RoleBuyer
	require.NoError(t, s.SaveSession(first))

	got, err := s.LoadSession()
	require.NoError(t, err)
	require.Equal(t, session.RoleBuyer, got.Role)
}

func TestClearSession(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveSession(session.Session{
		Name: "Asha", Email: "asha@farm.example", Role: session.RoleFarmer,
	}))
	require.NoError(t, s.ClearSession())

	sess, err := s.LoadSession()
	require.NoError(t, err)
	require.Nil(t, sess)

	// Clearing twice is fine.
	require.NoError(t, s.ClearSession())
}

func TestMalformedSessionPurged(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.put(keySession, "{not json"))

	sess, err := s.LoadSession()
	require.NoError(t, err)
	require.Nil(t, sess)

	// The corrupt record is gone, not just skipped.
	_, ok, err := s.get(keySession)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInvalidSessionPurged(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.put(keySession, `{"name":"Asha","email":"asha@farm.example","role":"admin"}`))

	sess, err := s.LoadSession()
	require.NoError(t, err)
	require.Nil(t, sess)

	_, ok, err := s.get(keySession)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestThemeRoundTrip(t *testing.T) {
	s := openTestStore(t)

	dark, err := s.LoadTheme()
	require.NoError(t, err)
	require.Nil(t, dark)

	require.NoError(t, s.SaveTheme(true))
	dark, err = s.LoadTheme()
	require.NoError(t, err)
	require.NotNil(t, dark)
	require.True(t, *dark)

	require.NoError(t, s.SaveTheme(false))
	dark, err = s.LoadTheme()
	require.NoError(t, err)
	require.NotNil(t, dark)
	require.False(t, *dark)
}

func TestThemeStoredAsLiteralStrings(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveTheme(true))
	raw, ok, err := s.get(keyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", raw)

	require.NoError(t, s.SaveTheme(false))
	raw, _, err = s.get(keyTheme)
	require.NoError(t, err)
	require.Equal(t, "light", raw)
}

func TestUnrecognizedThemePurged(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.put(keyTheme, "sepia"))

	dark, err := s.LoadTheme()
	require.NoError(t, err)
	require.Nil(t, dark)

	_, ok, err := s.get(keyTheme)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClearTheme(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveTheme(true))
	require.NoError(t, s.ClearTheme())

	dark, err := s.LoadTheme()
	require.NoError(t, err)
	require.Nil(t, dark)
}

func TestThemeIndependentOfSession(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveTheme(true))
	require.NoError(t, s.SaveSession(session.Session{
		Name: "Asha", Email: "asha@farm.example", Role: session.RoleFarmer,
	}))
	require.NoError(t, s.ClearSession())

	// Logout leaves the theme preference alone.
	dark, err := s.LoadTheme()
	require.NoError(t, err)
	require.NotNil(t, dark)
	require.True(t, *dark)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrilink.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSession(session.Session{
		Name: "Asha", Email: "asha@farm.example", Role: session.RoleBuyer,
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, session.RoleBuyer, got.Role)
}
