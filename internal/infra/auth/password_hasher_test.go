package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	password := "pw123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("pw124", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	password := "same-password"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Different salts produce different hashes, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestPasswordHasher_LongPasswords(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	// Beyond bcrypt's 72-byte input limit; the SHA-256 pre-hash keeps the
	// full password significant instead of silently truncating it.
	long := strings.Repeat("a", 200)
	longer := long + "b"

	hash, err := hasher.Hash(long)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(long, hash))
	assert.False(t, hasher.Check(longer, hash))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	// A malformed stored hash must report a mismatch, never panic or error out.
	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("pw123", ""))
}

func TestPasswordHasher_CostEmbeddedInHash(t *testing.T) {
	customCost := 6
	hasher := NewPasswordHasherWithCost(customCost)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestPasswordHasher_UnicodePasswords(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	password := "pässwörd-密碼-123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("pässwörd-密碼-124", hash))
}
