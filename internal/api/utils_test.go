package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"city":"Rome"}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "malformed", body: `{"city":`, wantErr: "badly-formed JSON"},
		{name: "unknown field", body: `{"town":"Rome"}`, wantErr: `unknown key "town"`},
		{name: "wrong type", body: `{"city":3}`, wantErr: `incorrect JSON type for field "city"`},
		{name: "trailing data", body: `{"city":"Rome"}{}`, wantErr: "single JSON value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var dst types.SetCityRequest
			err := DecodeJSONBody(w, r, &dst)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Rome", dst.City)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	ErrorResponse(w, r, http.StatusNotFound, "Session not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp types.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Session not found", resp.Error)
}

func TestParseUUIDParam(t *testing.T) {
	_, err := ParseUUIDParam("not-a-uuid")
	assert.Error(t, err)

	id, err := ParseUUIDParam("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())
}
