package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("farmer")
	require.NoError(t, err)
	require.Equal(t, RoleFarmer, role)

	role, err = ParseRole("  Buyer ")
	require.NoError(t, err)
	require.Equal(t, RoleBuyer, role)

	_, err = ParseRole("admin")
	require.Error(t, err)

	_, err = ParseRole("")
	require.Error(t, err)
}

func TestRoleOther(t *testing.T) {
	require.Equal(t, RoleBuyer, RoleFarmer.Other())
	require.Equal(t, RoleFarmer, RoleBuyer.Other())
}

func TestRoleLabels(t *testing.T) {
	require.Equal(t, "Farmer", RoleFarmer.Label())
	require.Equal(t, "Buyer", RoleBuyer.Label())
	require.True(t, RoleFarmer.IsValid())
	require.False(t, Role("merchant").IsValid())
}

func TestSessionValidate(t *testing.T) {
	valid := Session{Name: "Asha", Email: "asha@farm.example", Role: RoleBuyer}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		sess Session
	}{
		{"empty name", Session{Name: "  ", Email: "a@b.c", Role: RoleFarmer}},
		{"no at sign", Session{Name: "Asha", Email: "asha.example", Role: RoleFarmer}},
		{"no dot after at", Session{Name: "Asha", Email: "asha@example", Role: RoleFarmer}},
		{"bad role", Session{Name: "Asha", Email: "a@b.c", Role: "admin"}},
		{"empty role", Session{Name: "Asha", Email: "a@b.c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.sess.Validate())
		})
	}
}
