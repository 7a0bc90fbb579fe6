package gitlab_test

import (
	"testing"

	"github.com/forgekit-io/golab/pkg/gitlab"
	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config fails", func(t *testing.T) {
		t.Parallel()

		_, err := gitlab.New(nil)
		require.ErrorIs(t, err, golab.ErrConfigRequired)
	})

	t.Run("valid config builds a client without network activity", func(t *testing.T) {
		t.Parallel()

		client, err := gitlab.New(&golab.Config{
			Host:  "gitlab.example.com",
			Token: "test-token",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v4", client.BaseURL())
	})

	t.Run("incomplete config fails", func(t *testing.T) {
		t.Parallel()

		_, err := gitlab.New(&golab.Config{Host: "gitlab.example.com"})
		require.ErrorIs(t, err, golab.ErrTokenRequired)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := gitlab.NewWithToken("gitlab.example.com", "test-token")
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.example.com/api/v4", client.BaseURL())
}
