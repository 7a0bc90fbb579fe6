package golab_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantKind    golab.ErrorKind
		wantMessage string
	}{
		{
			name:        "401 maps to authentication",
			statusCode:  401,
			body:        "invalid token",
			wantKind:    golab.ErrorKindAuthentication,
			wantMessage: "Authentication failed: invalid token",
		},
		{
			name:        "404 maps to not found",
			statusCode:  404,
			body:        "no such project",
			wantKind:    golab.ErrorKindNotFound,
			wantMessage: "Resource not found: no such project",
		},
		{
			name:        "429 maps to rate limit",
			statusCode:  429,
			body:        "retry later",
			wantKind:    golab.ErrorKindRateLimit,
			wantMessage: "Rate limit exceeded: retry later",
		},
		{
			name:        "400 maps to generic api error",
			statusCode:  400,
			body:        "bad request",
			wantKind:    golab.ErrorKindAPI,
			wantMessage: "HTTP error 400: bad request",
		},
		{
			name:        "503 maps to generic api error",
			statusCode:  503,
			body:        "",
			wantKind:    golab.ErrorKindAPI,
			wantMessage: "HTTP error 503: ",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := golab.NewHTTPError(testCase.statusCode, testCase.body, "https://gitlab.example.com/api/v4/projects/1")

			assert.Equal(t, testCase.wantKind, err.Kind)
			assert.Equal(t, testCase.statusCode, err.StatusCode)
			assert.Equal(t, testCase.body, err.ResponseBody)
			assert.Equal(t, "https://gitlab.example.com/api/v4/projects/1", err.URL)
			assert.Equal(t, testCase.wantMessage, err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()
	t.Run("kind predicates match their kind only", func(t *testing.T) {
		t.Parallel()

		authErr := golab.NewHTTPError(401, "denied", "")
		assert.True(t, golab.IsAPIError(authErr))
		assert.True(t, golab.IsAuthentication(authErr))
		assert.False(t, golab.IsNotFound(authErr))
		assert.False(t, golab.IsRateLimit(authErr))

		notFoundErr := golab.NewHTTPError(404, "gone", "")
		assert.True(t, golab.IsNotFound(notFoundErr))
		assert.False(t, golab.IsAuthentication(notFoundErr))
	})

	t.Run("predicates unwrap wrapped errors", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("listing projects: %w", golab.NewHTTPError(429, "slow down", ""))

		assert.True(t, golab.IsAPIError(wrapped))
		assert.True(t, golab.IsRateLimit(wrapped))

		var apiErr *golab.Error

		require.ErrorAs(t, wrapped, &apiErr)
		assert.Equal(t, 429, apiErr.StatusCode)
	})

	t.Run("plain errors report false", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("connection refused")

		assert.False(t, golab.IsAPIError(plain))
		assert.False(t, golab.IsAuthentication(plain))
		assert.False(t, golab.IsNotFound(plain))
		assert.False(t, golab.IsRateLimit(plain))
	})
}
