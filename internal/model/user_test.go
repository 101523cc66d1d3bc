package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"John Doe":        "john-doe",
		"  Mary  Jane  ":  "mary-jane",
		"O'Brien & Sons!": "o-brien-sons",
		"already-clean":   "already-clean",
		"123 Main":        "123-main",
	}
	for in, want := range cases {
		assert.Equal(t, want, MakeSlug(in), "input %q", in)
	}
}

func TestPasswordHashing(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("s3cret!"))
	assert.NotEqual(t, "s3cret!", u.Password)
	assert.True(t, u.CheckPassword("s3cret!"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestBeforeSaveNormalizes(t *testing.T) {
	u := User{Username: "  Walter ", Email: "Walter@Example.COM"}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "walter", u.Username)
	assert.Equal(t, "walter@example.com", u.Email)
}
