package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	t.Run("EmptyPassword", func(t *testing.T) {
		hash, err := s.HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
		assert.Empty(t, hash)
	})

	t.Run("DistinctSalts", func(t *testing.T) {
		again, err := s.HashPassword("s3cret-pass")
		assert.NoError(t, err)
		assert.NotEqual(t, hash, again)
	})
}

func TestComparePassword(t *testing.T) {
	s := &HashService{}
	hash, err := s.HashPassword("s3cret-pass")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "Match", hash: hash, password: "s3cret-pass", want: true},
		{name: "WrongPassword", hash: hash, password: "other-pass", want: false},
		{name: "EmptyHash", hash: "", password: "s3cret-pass", want: false},
		{name: "GarbageHash", hash: "not-a-bcrypt-hash", password: "s3cret-pass", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ComparePassword(tt.hash, tt.password))
		})
	}
}
