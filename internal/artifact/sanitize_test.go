package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "The Matrix", "The_Matrix"},
		{"slash", "Face/Off", "Face_Off"},
		{"backslash and colon", `Alien: Covenant\Director`, "Alien__Covenant_Director"},
		{"diacritics", "Léon", "Leon"},
		{"diacritics with space", "Amélie Poulain", "Amelie_Poulain"},
		{"windows reserved runes", `What? "Quotes" <here>|there*`, "What___Quotes___here__there_"},
		{"already safe", "Inception", "Inception"},
		{"digits and dashes survive", "2001 - A Space Odyssey", "2001_-_A_Space_Odyssey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Deterministic(t *testing.T) {
	// Same title, same stem: the cache is addressed by derived name.
	assert.Equal(t, Sanitize("Léon: The Professional"), Sanitize("Léon: The Professional"))
}
