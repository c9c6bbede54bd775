package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, a *app.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func TestAPIReadCatalog(t *testing.T) {
	t.Parallel()
	a := testutil.NewApp(t)

	code, body := doJSON(t, a, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, code)
	cats := body["categories"].([]any)
	require.Len(t, cats, 6)
	assert.Equal(t, "all", cats[0].(map[string]any)["id"])

	code, body = doJSON(t, a, http.MethodGet, "/api/items?category=saree", "")
	require.Equal(t, http.StatusOK, code)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	saree := items[0].(map[string]any)
	assert.Equal(t, "rented", saree["status"])
	assert.Equal(t, false, saree["isAvailable"])
	assert.Len(t, saree["rentalPeriods"], 1)

	code, body = doJSON(t, a, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["items"], 6)

	code, body = doJSON(t, a, http.MethodGet, "/api/items/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Royal Navy Ballroom Gown", body["name"])
	assert.Equal(t, 4500.0, body["priceWithJewelry"])

	code, body = doJSON(t, a, http.MethodGet, "/api/items/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "That dress no longer exists", body["error"])
}

func TestAPICreateItem(t *testing.T) {
	t.Parallel()
	a := testutil.NewApp(t)

	code, body := doJSON(t, a, http.MethodPost, "/api/admin/items", `{"name":"Only Name"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please fill all required fields", body["error"])

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items", `{"name":"  ","category":"gown"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please fill all required fields", body["error"])

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items",
		`{"name":"Pearl Gown","category":"gown","priceWithJewelry":"abc","priceWithoutJewelry":2500,"sizes":["M"]}`)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, strings.HasPrefix(body["id"].(string), "d"))
	assert.Nil(t, body["priceWithJewelry"], "malformed price goes out as null")
	assert.Equal(t, 2500.0, body["priceWithoutJewelry"])
	assert.Equal(t, "available", body["status"])

	_, list := doJSON(t, a, http.MethodGet, "/api/items", "")
	items := list["items"].([]any)
	require.Len(t, items, 7)
	assert.Equal(t, body["id"], items[0].(map[string]any)["id"])
}

func TestAPIRentalLifecycle(t *testing.T) {
	t.Parallel()
	a := testutil.NewApp(t)

	code, body := doJSON(t, a, http.MethodPost, "/api/admin/items/3/rentals", `{"startDate":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please select both start and end dates", body["error"])

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items/3/rentals", `{"startDate":"2025-01-10","endDate":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "End date cannot be before start date", body["error"])

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items/nope/rentals", `{"startDate":"2025-01-01","endDate":"2025-01-10"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items/3/rentals", `{"startDate":"2025-01-01","endDate":"2025-01-10","customerName":"Asha"}`)
	require.Equal(t, http.StatusCreated, code)
	item := body["item"].(map[string]any)
	rental := body["rental"].(map[string]any)
	assert.Equal(t, "rented", item["status"])
	assert.Equal(t, "Asha", rental["customerName"])
	assert.Equal(t, "2025-01-10", rental["endDate"])
	rentalID := rental["id"].(string)

	code, body = doJSON(t, a, http.MethodDelete, "/api/admin/items/3/rentals/"+rentalID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "available", body["status"])
	assert.Empty(t, body["rentalPeriods"])

	code, body = doJSON(t, a, http.MethodDelete, "/api/admin/items/3/rentals/"+rentalID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "That rental period no longer exists", body["error"])
}

func TestAPIToggleAndSummary(t *testing.T) {
	t.Parallel()
	a := testutil.NewApp(t)

	code, body := doJSON(t, a, http.MethodPost, "/api/admin/items/1/toggle", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "held", body["status"])

	code, body = doJSON(t, a, http.MethodPost, "/api/admin/items/2/toggle", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "available", body["status"])
	assert.Empty(t, body["rentalPeriods"])

	code, body = doJSON(t, a, http.MethodGet, "/api/admin/summary", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"total": 6.0, "available": 5.0, "held": 1.0, "rented": 0.0, "bookings": 0.0}, body)

	code, _ = doJSON(t, a, http.MethodPost, "/api/admin/items/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, code)
}
