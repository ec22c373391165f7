package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkfetch/internal/adapters/store"
	"go.trai.ch/apkfetch/internal/core/domain"
)

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expected    *store.Credentials
		errContains string
	}{
		{
			name: "username and password",
			data: `[{"USERNAME": "user@example.com", "PASSWORD": "secret", "ANDROID_ID": "0123456789abcdef",
				"LANG_CODE": "en_US", "LANG": "us"}]`,
			expected: &store.Credentials{
				Username:  "user@example.com",
				Password:  "secret",
				AndroidID: "0123456789abcdef",
				LangCode:  "en_US",
				Lang:      "us",
			},
		},
		{
			name:     "token only",
			data:     `[{"TOKEN": "tok", "ANDROID_ID": "0123456789ABCDEF"}]`,
			expected: &store.Credentials{Token: "tok", AndroidID: "0123456789ABCDEF"},
		},
		{
			name: "first entry wins",
			data: `[{"TOKEN": "first", "ANDROID_ID": "0123456789abcdef"},
				{"TOKEN": "second", "ANDROID_ID": "fedcba9876543210"}]`,
			expected: &store.Credentials{Token: "first", AndroidID: "0123456789abcdef"},
		},
		{
			name:        "empty list",
			data:        `[]`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
		{
			name:        "object instead of list",
			data:        `{"TOKEN": "tok", "ANDROID_ID": "0123456789abcdef"}`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
		{
			name:        "missing android id",
			data:        `[{"TOKEN": "tok"}]`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
		{
			name:        "malformed android id",
			data:        `[{"TOKEN": "tok", "ANDROID_ID": "not-hex"}]`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
		{
			name:        "password without username",
			data:        `[{"PASSWORD": "secret", "ANDROID_ID": "0123456789abcdef"}]`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
		{
			name:        "not json",
			data:        `USERNAME=me`,
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := store.ParseCredentials([]byte(tt.data))
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, creds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, creds)
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		data := `[{"TOKEN": "tok", "ANDROID_ID": "0123456789abcdef"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), domain.PrivateFilePerm))

		creds, err := store.LoadCredentials(path)
		require.NoError(t, err)
		assert.Equal(t, "tok", creds.Token)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadCredentials(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCredentialsRead.Error())
	})
}
