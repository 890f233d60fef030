//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Envelope mirrors the uniform API response shape.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEnvelope parses the uniform envelope and returns it for assertions.
func DecodeEnvelope(t *testing.T, body *bytes.Buffer) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env), "Failed to decode response envelope")
	return env
}

// DecodeEnvelopeData asserts success and unmarshals the data field into target.
func DecodeEnvelopeData(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()

	env := DecodeEnvelope(t, w.Body)
	require.True(t, env.Success, "expected success envelope, got message: %s", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, target))
}
