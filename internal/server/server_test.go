package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lavatech-dev/balance/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(session.NewDefault(), zap.NewNop(), ":0")
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGetBalance(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []struct {
			Category string `json:"category"`
			Accounts []struct {
				Name string `json:"name"`
			} `json:"accounts"`
		} `json:"categories"`
		Totals struct {
			Balanced bool `json:"balanced"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 5)
	assert.True(t, resp.Totals.Balanced)
}

func TestCashPurchaseEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/cash", map[string]any{
		"pay_account":   "BANCO",
		"dest_category": "NONCURRENT_ASSETS",
		"dest_account":  "TERRENOS",
		"total":         "116.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Receipt struct {
			Kind     string `json:"kind"`
			Subtotal string `json:"subtotal"`
			Tax      string `json:"tax"`
		} `json:"receipt"`
		Description string `json:"description"`
		Totals      struct {
			Balanced bool `json:"balanced"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CASH_PURCHASE", resp.Receipt.Kind)
	assert.Equal(t, "100", resp.Receipt.Subtotal)
	assert.Equal(t, "16", resp.Receipt.Tax)
	assert.NotEmpty(t, resp.Description)
	assert.True(t, resp.Totals.Balanced)
}

func TestCashPurchaseUnknownAccountIs404(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/cash", map[string]any{
		"pay_account":   "BANCO",
		"dest_category": "NONCURRENT_ASSETS",
		"dest_account":  "MAQUINARIA",
		"total":         "116.00",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCashPurchaseInsufficientFundsIs422(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/cash", map[string]any{
		"pay_account":   "CAJA",
		"dest_category": "CURRENT_ASSETS",
		"dest_account":  "INVENTARIO",
		"total":         "60000",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// force pushes it through.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/transactions/cash", map[string]any{
		"pay_account":   "CAJA",
		"dest_category": "CURRENT_ASSETS",
		"dest_account":  "INVENTARIO",
		"total":         "60000",
		"force":         true,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreditPurchaseEndpointEmptyLinesIs400(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/credit", map[string]any{
		"lines":              []any{},
		"liability_category": "SHORTTERM_LIABILITIES",
		"liability_account":  "PROVEEDORES",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCombinedPurchaseEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/combined", map[string]any{
		"pay_account":        "BANCO",
		"dest_category":      "NONCURRENT_ASSETS",
		"dest_account":       "EDIFICIOS",
		"liability_category": "LONGTERM_LIABILITIES",
		"liability_account":  "HIPOTECAS",
		"total":              "500000",
		"advance_fraction":   "0.40",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Receipt struct {
			Advance string `json:"advance"`
			Debt    string `json:"debt"`
		} `json:"receipt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "200000", resp.Receipt.Advance)
	assert.Equal(t, "300000", resp.Receipt.Debt)
}

func TestCustomerAdvanceEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/advance", map[string]any{
		"receiving_account": "BANCO",
		"sale_total":        "339990",
		"advance_fraction":  "0.40",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAccountLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/accounts", map[string]any{
		"category": "CURRENT_ASSETS",
		"name":     "DEUDORES",
		"value":    "25000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicates conflict.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/accounts", map[string]any{
		"category": "CURRENT_ASSETS",
		"name":     " deudores ",
		"value":    "1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/api/v1/accounts/CURRENT_ASSETS/DEUDORES", map[string]any{
		"value": "30000",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/v1/accounts/CURRENT_ASSETS/DEUDORES", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Protected accounts cannot be deleted.
	rec = doJSON(t, srv, http.MethodDelete, "/api/v1/accounts/CURRENT_ASSETS/CAJA", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResetEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/transactions/cash", map[string]any{
		"pay_account":   "BANCO",
		"dest_category": "NONCURRENT_ASSETS",
		"dest_account":  "TERRENOS",
		"total":         "116.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	store := srv.session.Store()
	assert.True(t, store.Current().Equal(store.CatalogSnapshot()))
}

func TestListAccountsBadCategoryIs400(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/accounts?category=REVENUE", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
