package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailPlausible(t *testing.T) {
	valid := []string{
		"marie@example.com",
		"jean.dupont+rdv@salon.fr",
		" marie@example.com ",
	}
	for _, e := range valid {
		assert.True(t, IsEmailPlausible(e), e)
	}

	invalid := []string{
		"",
		"marie",
		"marie@",
		"@example.com",
		"marie@example",
		"marie @example.com",
		"marie@exa mple.com",
	}
	for _, e := range invalid {
		assert.False(t, IsEmailPlausible(e), e)
	}
}
