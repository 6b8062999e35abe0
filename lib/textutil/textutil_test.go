package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, NormalizeName("Lady Kimi"), NormalizeName(" lady  KIMI\n"))
	require.NotEqual(t, NormalizeName("Ninja"), NormalizeName("Ninjas"))
}

func TestSlug(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "Ninja", expected: "ninja"},
		{name: "Lady Kimi", expected: "lady-kimi"},
		{name: "  Arbiter ", expected: "arbiter"},
		{name: "Siphi the Lost  Bride", expected: "siphi-the-lost-bride"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, Slug(test.name))
	}
}
