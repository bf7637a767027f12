package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workout-tracker/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hash)

	require.NoError(t, password.Compare(hash, "secret-password"))
	require.Error(t, password.Compare(hash, "wrong-password"))
}

func TestHash_ProducesDifferentSalts(t *testing.T) {
	first, err := password.Hash("secret-password")
	require.NoError(t, err)

	second, err := password.Hash("secret-password")
	require.NoError(t, err)

	// bcrypt использует случайную соль, хеши не должны совпадать
	require.NotEqual(t, first, second)
}
