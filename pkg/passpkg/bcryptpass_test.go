package passpkg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	first, err := Hash("SamplePassword")
	require.NoError(t, err)
	require.NotEqual(t, "SamplePassword", first)

	second, err := Hash("SamplePassword")
	require.NoError(t, err)
	require.NotEqual(t, first, second, "salt must differ between hashes")
}

func TestCheck(t *testing.T) {
	hashed, err := Hash("SamplePassword")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "OK", password: "SamplePassword"},
		{name: "WrongCase", password: "samplepassword", wantErr: bcrypt.ErrMismatchedHashAndPassword},
		{name: "Empty", password: "", wantErr: bcrypt.ErrMismatchedHashAndPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, Check(tc.password, hashed), tc.wantErr)
		})
	}
}
