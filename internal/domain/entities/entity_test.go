package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "zeus", NormalizeName("  Zeus "))
	assert.Equal(t, "", NormalizeName(""))
}

func TestEntity_Abode(t *testing.T) {
	assert.Empty(t, Entity{Name: "Heracles"}.Abode())
	assert.Equal(t, "Mount Olympus", Entity{
		Name:       "Zeus",
		Attributes: &Attributes{Abode: "Mount Olympus"},
	}.Abode())
}

func TestRemoteFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RemoteFetchError
		expected string
	}{
		{
			name:     "status with body",
			err:      &RemoteFetchError{Category: CategoryGod, URL: "http://api/gods", StatusCode: 503, Body: "down"},
			expected: "fetching gods from http://api/gods: status 503: down",
		},
		{
			name:     "status without body",
			err:      &RemoteFetchError{Category: CategoryHero, URL: "http://api/heroes", StatusCode: 404},
			expected: "fetching heroes from http://api/heroes: status 404",
		},
		{
			name:     "transport failure",
			err:      &RemoteFetchError{Category: CategoryGod, URL: "http://api/gods", Err: errors.New("connection refused")},
			expected: "fetching gods from http://api/gods: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestRemoteFetchError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := error(&RemoteFetchError{Category: CategoryGod, Err: cause})

	assert.ErrorIs(t, err, cause)

	var fetchErr *RemoteFetchError
	assert.True(t, errors.As(err, &fetchErr))
}
