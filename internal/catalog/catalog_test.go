package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "globetrek/internal/errors"
)

func TestCatalog_Get(t *testing.T) {
	c := New()

	rome, err := c.Get("rome")
	assert.NoError(t, err)
	assert.Equal(t, "Rome, Italy", rome.Name)
	assert.Len(t, rome.TouristSpots, 5)

	_, err = c.Get("atlantis")
	assert.ErrorIs(t, err, apperrors.ErrDestinationNotFound)
}

func TestCatalog_Search(t *testing.T) {
	c := New()

	tests := []struct {
		name      string
		query     string
		wantSlugs []string
	}{
		{
			name:      "exact lowercase match",
			query:     "paris",
			wantSlugs: []string{"paris"},
		},
		{
			name:      "mixed case match",
			query:     "PARIS",
			wantSlugs: []string{"paris"},
		},
		{
			name:      "empty query matches all in insertion order",
			query:     "",
			wantSlugs: []string{"paris", "tokyo", "new_york", "rome", "sydney"},
		},
		{
			name:      "substring match on name",
			query:     "york",
			wantSlugs: []string{"new_york"},
		},
		{
			name:      "no match",
			query:     "atlantis",
			wantSlugs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := c.Search(tt.query)
			var slugs []string
			for _, d := range results {
				slugs = append(slugs, d.Slug)
			}
			assert.Equal(t, tt.wantSlugs, slugs)
		})
	}
}

func TestCatalog_Accommodations(t *testing.T) {
	c := New()

	accommodations := c.Accommodations()
	assert.Len(t, accommodations, 2)
	assert.Equal(t, "Hotel A", accommodations[0].Name)
	assert.Equal(t, "Hostel B", accommodations[1].Name)
}
