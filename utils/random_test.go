package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(CustomerIDLength)
	require.Len(t, s, CustomerIDLength)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(idCharset, r), string(r))
	}
}

func TestNewCustomerIDRetriesOnCollision(t *testing.T) {
	collisions := 3
	calls := 0
	id, err := NewCustomerID(func(string) (bool, error) {
		calls++
		return calls <= collisions, nil
	})

	require.NoError(t, err)
	assert.Len(t, id, CustomerIDLength)
	assert.Equal(t, collisions+1, calls)
}

func TestNewCustomerIDPropagatesLookupError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCustomerID(func(string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNewCustomerIDGivesUpEventually(t *testing.T) {
	_, err := NewCustomerID(func(string) (bool, error) {
		return true, nil
	})
	assert.Error(t, err)
}
