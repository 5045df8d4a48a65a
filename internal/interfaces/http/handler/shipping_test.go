package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resale/backend/internal/interfaces/http/dto"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"], "expected success, got %s", w.Body.String())
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	return data
}

func errorCodeOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	code, _ := errInfo["code"].(string)
	return code
}

func TestShippingQuote(t *testing.T) {
	env := newTestEnv(t)

	t.Run("cheapest method wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote",
			strings.NewReader(`{"weight_grams":450,"destination":"US"}`))
		req.Header.Set("Content-Type", "application/json")
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "Surface", data["method"])
		assert.Equal(t, "600", data["cost_jpy"])
		assert.Equal(t, float64(1), data["zone"])
	})

	t.Run("restricted method list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote",
			strings.NewReader(`{"weight_grams":450,"destination":"US","methods":["ems"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "EMS", data["method"])
		assert.Equal(t, "1400", data["cost_jpy"])
	})

	t.Run("unknown destination", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote",
			strings.NewReader(`{"weight_grams":450,"destination":"XX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := env.serve(req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeUnknownDestination, errorCodeOf(t, w))
	})

	t.Run("unknown method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote",
			strings.NewReader(`{"weight_grams":450,"destination":"US","methods":["Pigeon"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := env.serve(req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing weight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote",
			strings.NewReader(`{"destination":"US"}`))
		req.Header.Set("Content-Type", "application/json")
		w := env.serve(req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShippingOptions(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipping/options?weight_grams=450&destination=US", nil)
	w := env.serve(req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	options, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, options, 6)

	// Sorted by cost ascending
	first := options[0].(map[string]any)
	last := options[len(options)-1].(map[string]any)
	assert.Equal(t, "Surface", first["method"])
	assert.Equal(t, "EMS", last["method"])
}

func TestShippingZoneInfo(t *testing.T) {
	env := newTestEnv(t)

	t.Run("known country", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shipping/zones/GB", nil)
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "GB", data["country_code"])
		assert.Equal(t, float64(3), data["zone"])
	})

	t.Run("unknown country", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shipping/zones/XX", nil)
		w := env.serve(req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestShippingEstimateWeight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/estimate-weight",
		strings.NewReader(`{"category":"","title":"Nintendo Switch console"}`))
	req.Header.Set("Content-Type", "application/json")
	w := env.serve(req)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, float64(800), data["grams"])
}
