package pdf

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short name untouched", "Ghee 500ml", 24, "Ghee 500ml"},
		{"exactly at the limit", "abc", 3, "abc"},
		{"long name cut", "Extra Long Product Name Overflow", 10, "Extra Long"},
		{"multibyte name cut on a rune boundary", "पनीर मसाला स्पेशल", 8, "पनीर मसा"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len([]rune(got)), tt.limit)
		})
	}
}
