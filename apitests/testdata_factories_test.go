package apitests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFactoryGeneratesUniqueEmails(t *testing.T) {
	factory := NewUserFactory("uniqueness")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		user := factory.NextUniqueUser()
		require.True(t, user.Email.IsDefined())
		email := user.Email.Value()
		assert.False(t, seen[email], "email %q was produced twice", email)
		seen[email] = true
	}
}

func TestUserFactoryFillsRequiredFields(t *testing.T) {
	user := NewUserFactory("required-fields").NextUniqueUser()
	assert.True(t, user.FirstName.IsDefined())
	assert.True(t, user.LastName.IsDefined())
	assert.True(t, user.Email.IsDefined())
}

func TestSeparateFactoriesDoNotCollide(t *testing.T) {
	// two factories with the same description still produce distinct emails,
	// even when created within the same millisecond
	a := NewUserFactory("same").NextUniqueUser()
	b := NewUserFactory("same").NextUniqueUser()
	assert.NotEqual(t, a.Email.Value(), b.Email.Value())
}

func TestNonexistentUserIDIsWellFormed(t *testing.T) {
	id := NonexistentUserID()
	assert.Len(t, id, 24)
	for _, c := range id {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}
