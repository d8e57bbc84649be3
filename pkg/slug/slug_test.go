package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple word", "Electronics", "electronics"},
		{"spaces become dashes", "Home Appliances", "home-appliances"},
		{"punctuation collapses", "Home & Garden!", "home-garden"},
		{"diacritics stripped", "Çay Kahve Köşesi", "cay-kahve-kosesi"},
		{"digits kept", "Top 10 Gadgets", "top-10-gadgets"},
		{"leading and trailing junk trimmed", "  --Books--  ", "books"},
		{"consecutive separators collapse", "a  -  b", "a-b"},
		{"already a slug", "usb-c-cables", "usb-c-cables"},
		{"empty input", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.input))
		})
	}
}
