package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewKeys(t *testing.T) {
	assert.Equal(t, "view:accounts:user:7", AccountListKey(7))
	assert.Equal(t, "view:account:7:12", AccountDetailKey(7, 12))
	// Keys for different users never collide
	assert.NotEqual(t, AccountListKey(1), AccountListKey(2))
	assert.NotEqual(t, AccountDetailKey(1, 12), AccountDetailKey(2, 12))
}
