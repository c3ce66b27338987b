package util

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_MonotonicAndValid(t *testing.T) {
	prev := NewULID()
	for i := 0; i < 100; i++ {
		next := NewULID()
		assert.True(t, IsULID(next))
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestIsULID(t *testing.T) {
	assert.True(t, IsULID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.False(t, IsULID(""))
	assert.False(t, IsULID("not-a-ulid"))
	assert.False(t, IsULID("01ARZ3NDEKTSV4RRFFQ69G5FA"))
}

func TestNullStringHelpers(t *testing.T) {
	assert.Equal(t, sql.NullString{}, StringToNullString("  "))
	assert.Equal(t, sql.NullString{String: "Ana", Valid: true}, StringToNullString("Ana"))
	assert.Equal(t, "", NullStringToString(sql.NullString{}))
	assert.Equal(t, "Ana", NullStringToString(sql.NullString{String: "Ana", Valid: true}))
}
