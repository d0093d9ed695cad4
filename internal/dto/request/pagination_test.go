package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedRequest(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults", "", "", 1, 10, 0},
		{"second page", "2", "10", 2, 10, 10},
		{"garbage falls back", "abc", "-5", 1, 10, 0},
		{"zero falls back", "0", "0", 1, 10, 0},
		{"limit capped", "3", "500", 3, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginatedRequest(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.CurrentPage())
			assert.Equal(t, tt.wantLimit, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
