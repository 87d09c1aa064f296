package routes

import (
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"tms-lite/config"
	"tms-lite/constants"
	"tms-lite/database"
	shipmentModel "tms-lite/models/shipment"
	catalogService "tms-lite/services/catalog"
	"tms-lite/types"
	catalogTypes "tms-lite/types/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "routes.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTransportApp(t *testing.T, cfg config.Config) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg.FrontendURL = "*"
	app := NewApp(cfg, nil)
	SetupTransportRoutes(app, db, cfg)
	return app, db
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string, header ...string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestTransport_FormFlow(t *testing.T) {
	app, db := newTransportApp(t, config.Config{})

	resp := postForm(t, app, "/add_driver", url.Values{"name": {"Ann"}, "truck_number": {"T-1"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	resp = postForm(t, app, "/add_shipment", url.Values{
		"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}, "driver_id": {"1"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp = postForm(t, app, "/update_status/1", url.Values{"status": {"In Transit"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp = postForm(t, app, "/add_box/1", url.Values{"code": {"B1"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	var s shipmentModel.Shipment
	require.NoError(t, db.Preload("Boxes").Preload("History").First(&s, 1).Error)
	assert.Equal(t, shipmentModel.StatusInTransit, s.Status)
	require.Len(t, s.Boxes, 1)
	assert.Len(t, s.History, 3)

	resp = get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Ann")
	assert.Contains(t, body, "1 shipment(s) created today")
}

func TestTransport_DuplicateBoxNotice(t *testing.T) {
	app, db := newTransportApp(t, config.Config{})

	postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}})
	postForm(t, app, "/add_box/1", url.Values{"code": {"B1"}})

	resp := postForm(t, app, "/add_box/1", url.Values{"code": {"B1"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	location, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/", location.Path)
	assert.Equal(t, "duplicate_box", location.Query().Get("notice"))
	assert.Equal(t, "B1", location.Query().Get("code"))

	var boxes int64
	require.NoError(t, db.Model(&shipmentModel.Box{}).Count(&boxes).Error)
	assert.Equal(t, int64(1), boxes)

	body := readBody(t, get(t, app, location.String()))
	assert.Contains(t, body, "already exists on shipment #1")

	body = readBody(t, get(t, app, "/"))
	assert.NotContains(t, body, "already exists")
}

func TestTransport_Errors(t *testing.T) {
	app, _ := newTransportApp(t, config.Config{})

	resp := postForm(t, app, "/add_driver", url.Values{"name": {"Ann"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postForm(t, app, "/update_status/99", url.Values{"status": {"Delivered"}})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = postForm(t, app, "/add_box/99", url.Values{"code": {"B1"}})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = postForm(t, app, "/delete_shipment/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = postForm(t, app, "/delete_driver/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = postForm(t, app, "/delete_shipment/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}})
	resp = postForm(t, app, "/update_status/1", url.Values{"status": {"Lost"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var apiResp types.ApiResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &apiResp))
	assert.Equal(t, fiber.StatusBadRequest, apiResp.Status)
}

func TestTransport_DeleteShipment(t *testing.T) {
	app, db := newTransportApp(t, config.Config{})

	postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}})
	postForm(t, app, "/add_box/1", url.Values{"code": {"B1"}})

	resp := postForm(t, app, "/delete_shipment/1", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var shipments, boxes, history int64
	require.NoError(t, db.Model(&shipmentModel.Shipment{}).Count(&shipments).Error)
	require.NoError(t, db.Model(&shipmentModel.Box{}).Count(&boxes).Error)
	require.NoError(t, db.Model(&shipmentModel.History{}).Count(&history).Error)
	assert.Zero(t, shipments)
	assert.Zero(t, boxes)
	assert.Zero(t, history)
}

func TestTransport_API(t *testing.T) {
	app, _ := newTransportApp(t, config.Config{})
	postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}})

	resp := get(t, app, "/api/shipments/1/history?since=today")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var history struct {
		Data []shipmentModel.History `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &history))
	require.Len(t, history.Data, 1)
	assert.Equal(t, "Shipment created for Acme", history.Data[0].Action)

	resp = get(t, app, "/api/shipments/1/history?since=yesterday-ish")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = get(t, app, "/api/shipments/2")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = get(t, app, "/export/shipments.xlsx")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "shipments.xlsx")
	assert.NotEmpty(t, readBody(t, resp))
}

func TestTransport_Metrics(t *testing.T) {
	app, _ := newTransportApp(t, config.Config{})
	postForm(t, app, "/add_shipment", url.Values{"customer_name": {"Acme"}, "origin": {"NY"}, "destination": {"LA"}})

	resp := get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "tms_shipments_created_total")
	assert.Contains(t, body, "tms_boxes_added_total")
}

func TestTransport_APIRequiresTokenWhenSecretSet(t *testing.T) {
	const secret = "test-secret"
	app, _ := newTransportApp(t, config.Config{JWTSecret: secret})

	resp := get(t, app, "/api/shipments")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	sign := func(perms ...string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"permissions": perms})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return "Bearer " + signed
	}

	resp = get(t, app, "/api/shipments", fiber.HeaderAuthorization, sign("other.permission"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/api/shipments", fiber.HeaderAuthorization, sign(constants.PermTransportRead))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// form routes stay open
	resp = postForm(t, app, "/add_driver", url.Values{"name": {"Ann"}, "truck_number": {"T-1"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func newCatalogApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := catalogService.NewService(newTestDB(t), catalogService.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, svc.Refresh(context.Background()))

	app := NewApp(config.Config{FrontendURL: "*"}, nil)
	SetupCatalogRoutes(app, svc)
	return app
}

func TestCatalog_Trending(t *testing.T) {
	app := newCatalogApp(t)

	resp := get(t, app, "/trending")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []catalogTypes.TrendingItem
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &items))
	require.Len(t, items, 9)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Popularity, items[i].Popularity)
	}
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Popularity, catalogService.MinPopularity)
		assert.LessOrEqual(t, it.Popularity, catalogService.MaxPopularity)
	}
}

func TestCatalog_ByBrand(t *testing.T) {
	app := newCatalogApp(t)

	resp := get(t, app, "/brand/Louis%20Vuitton")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items []catalogTypes.BrandItem
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Neverfull MM", items[0].Name)

	resp = get(t, app, "/brand/Gucci")
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &items))
	assert.Len(t, items, 3)

	resp = get(t, app, "/brand/Unknown")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", readBody(t, resp))
}

func TestCatalog_Metrics(t *testing.T) {
	app := newCatalogApp(t)

	resp := get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "catalog_refresh_total")
}

func TestCatalog_Index(t *testing.T) {
	app := newCatalogApp(t)

	resp := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"Gucci"`)
}
