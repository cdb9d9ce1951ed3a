package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountPasswordMatch(t *testing.T) {
	account := Account{
		ID:        "1",
		Username:  "alice",
		Password:  "pass1234",
		CreatedAt: time.Now(),
	}

	assert.True(t, account.IsPasswordMatch("pass1234"), "should match correct password")
	assert.False(t, account.IsPasswordMatch("wrongpass"), "should not match incorrect password")
	assert.False(t, account.IsPasswordMatch("PASS1234"), "comparison is case sensitive")
}
