package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeBody(extra string) string {
	base := `"selling_price_usd":"50","supplier_price_jpy":"3000","weight_grams":450,"destination":"US","jpy_per_usd":"150"`
	if extra != "" {
		base += "," + extra
	}
	return "{" + base + "}"
}

func postJSON(env *testEnv, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return env.serve(req)
}

func TestProfitCompute(t *testing.T) {
	env := newTestEnv(t)

	t.Run("category fee mode", func(t *testing.T) {
		w := postJSON(env, "/api/v1/profit/compute", computeBody(""))

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		report := data["report"].(map[string]any)

		profit := report["profit"].(map[string]any)
		assert.Equal(t, "19.63", profit["amount"])
		assert.Equal(t, "USD", profit["currency"])
		assert.Equal(t, "39.25", report["margin_percent"])
		assert.Equal(t, "request", data["rate_source"])

		quote := report["quote"].(map[string]any)
		assert.Equal(t, "Surface", quote["method"])
	})

	t.Run("flat fee mode", func(t *testing.T) {
		w := postJSON(env, "/api/v1/profit/compute", computeBody(`"fee_mode":"flat"`))

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		report := data["report"].(map[string]any)
		fee := report["fee_amount"].(map[string]any)
		assert.Equal(t, "6.5", fee["amount"])
	})

	t.Run("rate from provider when omitted", func(t *testing.T) {
		body := `{"selling_price_usd":"50","supplier_price_jpy":"3000","weight_grams":450,"destination":"US"}`
		w := postJSON(env, "/api/v1/profit/compute", body)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "live", data["rate_source"])
	})

	t.Run("save persists a record", func(t *testing.T) {
		before := len(env.reports.records)
		w := postJSON(env, "/api/v1/profit/compute", computeBody(`"save":true,"title":"Switch"`))

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.NotEmpty(t, data["record_id"])
		assert.Len(t, env.reports.records, before+1)
	})

	t.Run("unknown destination", func(t *testing.T) {
		body := strings.Replace(computeBody(""), `"US"`, `"XX"`, 1)
		w := postJSON(env, "/api/v1/profit/compute", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("negative selling price", func(t *testing.T) {
		body := strings.Replace(computeBody(""), `"selling_price_usd":"50"`, `"selling_price_usd":"-50"`, 1)
		w := postJSON(env, "/api/v1/profit/compute", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfitHistory(t *testing.T) {
	env := newTestEnv(t)

	// Save two calculations first
	for i := 0; i < 2; i++ {
		w := postJSON(env, "/api/v1/profit/compute", computeBody(`"save":true`))
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profit/history?page=1&page_size=10", nil)
	w := env.serve(req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["total"])

	records := body["data"].([]any)
	assert.Len(t, records, 2)
}

func TestProfitHistoryExport(t *testing.T) {
	env := newTestEnv(t)

	w := postJSON(env, "/api/v1/profit/compute", computeBody(`"save":true,"title":"Camera"`))
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profit/history/export", nil)
	resp := env.serve(req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,created_at,title"))
	assert.Contains(t, lines[1], "Camera")
}

func TestProfitMaxPurchasePrice(t *testing.T) {
	env := newTestEnv(t)

	t.Run("computes ceiling", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/profit/max-purchase-price?selling_price_jpy=10000&target_margin=0.2", nil)
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "7250", data["max_purchase_price_jpy"])
	})

	t.Run("rejects garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/profit/max-purchase-price?selling_price_jpy=abc&target_margin=0.2", nil)
		w := env.serve(req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFeeRateLookup(t *testing.T) {
	env := newTestEnv(t)

	t.Run("known category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/electronics", nil)
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "0.0875", data["rate"])
	})

	t.Run("unknown category falls back to default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/underwater-basket-weaving", nil)
		w := env.serve(req)

		require.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "0.1275", data["rate"])
	})
}
