package request

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("3f2b9c1e-8a7d-4e6f-9b0a-1c2d3e4f5a6b"))
	assert.True(t, IsUUID("3F2B9C1E-8A7D-4E6F-9B0A-1C2D3E4F5A6B"))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.False(t, IsUUID("{3f2b9c1e-8a7d-4e6f-9b0a-1c2d3e4f5a6b}"))
	assert.False(t, IsUUID("3f2b9c1e8a7d4e6f9b0a1c2d3e4f5a6b"))
	assert.False(t, IsUUID(""))
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, IsJSONContentType("application/json"))
	assert.True(t, IsJSONContentType("Application/JSON; charset=utf-8"))
	assert.False(t, IsJSONContentType("text/plain"))
	assert.False(t, IsJSONContentType(""))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError(ReasonInvalidIdentifier, "bad id"))

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonInvalidIdentifier, ve.Reason)
	assert.Equal(t, "bad id", ve.Message)

	_, ok = AsValidationError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestDecodeObject(t *testing.T) {
	type payload struct {
		PH *float64 `json:"ph"`
	}

	cases := []struct {
		name    string
		body    string
		reason  Reason
		message string
	}{
		{"empty", ``, ReasonMalformedBody, MsgInvalidJSON},
		{"array", `[1,2]`, ReasonMalformedBody, MsgInvalidJSON},
		{"truncated", `{"ph":`, ReasonMalformedBody, MsgInvalidJSON},
		{"wrong type", `{"ph":"seven"}`, ReasonInvalidField, "ph must be a number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			ve, ok := AsValidationError(DecodeObject([]byte(tc.body), &p))
			require.True(t, ok)
			assert.Equal(t, tc.reason, ve.Reason)
			assert.Equal(t, tc.message, ve.Message)
		})
	}

	var p payload
	require.NoError(t, DecodeObject([]byte(` {"ph":null} `), &p))
	assert.Nil(t, p.PH)
}

func TestReadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ph":7}`))
	body, err := ReadBody(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Equal(t, `{"ph":7}`, string(body))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", MaxBodyBytes+1)))
	_, err = ReadBody(httptest.NewRecorder(), req)
	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, err, &tooLarge)
	assert.EqualValues(t, MaxBodyBytes, tooLarge.Limit)
}
