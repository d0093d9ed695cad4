package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 7, ParseInt("7", 10))
}

func TestParseID(t *testing.T) {
	for in, want := range map[string]int64{"42": 42, "0": 0, "-1": -1} {
		id, ok := ParseID(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, id)
	}

	for _, in := range []string{"", "1.5", "x", "99999999999999999999"} {
		_, ok := ParseID(in)
		assert.False(t, ok, in)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 2, CalculateTotalPages(15, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
		wantOffset            int
	}{
		{1, 10, 1, 10, 0},
		{0, 0, DefaultPage, DefaultPerPage, 0},
		{-4, 250, 1, MaxPerPage, 0},
		{3, 5, 3, 5, 10},
	}

	for _, tt := range tests {
		page, perPage := NormalizePage(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPerPage, perPage)
		assert.Equal(t, tt.wantOffset, PageOffset(tt.page, tt.perPage))
	}
}
