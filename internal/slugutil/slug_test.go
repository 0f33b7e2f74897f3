package slugutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Salon Belle Vue":     "salon-belle-vue",
		"  Chez   Marie  ":    "chez-marie",
		"L'Atelier du Style!": "latelier-du-style",
		"Coiffure-2000":       "coiffure-2000",
		"--- Salon ---":       "salon",
		"":                    "",
		"!!!":                 "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "normalize %q", in)
	}
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "chez-marie-a1b2", WithSuffix("chez-marie", "a1b2"))
}
