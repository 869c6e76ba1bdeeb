package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return Success(c, fiber.StatusAccepted, "", map[string]int{"queued": 1})
	})
	app.Get("/bad", func(c fiber.Ctx) error {
		return Error(c, 999, "", nil)
	})

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/ok", fiber.StatusAccepted, MessageAccepted},
		{"/bad", fiber.StatusInternalServerError, MessageInternalServerError},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var env SemanticResponse
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, tc.status, resp.StatusCode)
		assert.Equal(t, tc.status, env.Status)
		assert.Equal(t, tc.message, env.Message)
	}
}
