package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/moitfe/portal-api/internal/core/service"
	"github.com/moitfe/portal-api/internal/infrastructure/db/memory"
)

// The prometheus middleware registers its collectors globally, so the test
// router is built once and shared.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

func portalRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		log := zerolog.Nop()
		records := service.NewRecordService(memory.NewRecordRepository(memory.Options{}), log)
		if err := records.LoadAll(context.Background()); err != nil {
			t.Fatalf("LoadAll: %v", err)
		}
		users := memory.NewUserRepository()
		sessions := service.NewSessionService(users, memory.NewSessionStore(), "test-secret", time.Hour, log)

		testRouter = NewRouter(Dependencies{
			Records:  records,
			Sessions: sessions,
			Users:    users,
			Stats:    service.NewStatsService(records),
			Logger:   log,
		})
	})
	return testRouter
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, userID string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/auth/login", "", `{"user_id":"`+userID+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: got %d, body %s", userID, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func TestPortalAPI(t *testing.T) {
	e := portalRouter(t)

	enumToken := login(t, e, "u-3")
	adminToken := login(t, e, "u-2")
	superToken := login(t, e, "u-1")
	viewerToken := login(t, e, "u-4")

	var createdID string

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/v1/records/forest", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401", rec.Code)
		}
	})

	t.Run("unknown user cannot log in", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/auth/login", "", `{"user_id":"u-99"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404", rec.Code)
		}
	})

	t.Run("me returns the session identity", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/auth/me", enumToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", rec.Code)
		}
		var user struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if user.ID != "u-3" || user.Role != "ENUMERATOR" {
			t.Fatalf("unexpected identity: %+v", user)
		}
	})

	t.Run("enumerator creates a forest record", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/v1/records/forest", enumToken,
			`{"office":"Division Forest Office, Kaski","date":"2024-06-16","total_forest_area":12.5}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
		}
		var created struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.Status != "Pending" {
			t.Fatalf("status: got %s, want Pending", created.Status)
		}
		createdID = created.ID
	})

	t.Run("create without required fields fails validation", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/v1/records/forest", enumToken, `{"date":"2024-06-16"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("got %d, want 422", rec.Code)
		}
	})

	t.Run("viewer cannot open a data-entry form", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/v1/records/forest", viewerToken,
			`{"office":"X","date":"2024-01-01"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("got %d, want 403", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["redirect"] != "/dashboard" {
			t.Fatalf("redirect: got %q, want /dashboard", body["redirect"])
		}
	})

	t.Run("record list is newest first", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/v1/records/forest", viewerToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", rec.Code)
		}
		var resp struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Data) == 0 || resp.Data[0].ID != createdID {
			t.Fatalf("first record: got %+v, want %s", resp.Data, createdID)
		}
	})

	t.Run("unknown category is a 404", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/v1/records/mining", viewerToken, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404", rec.Code)
		}
	})

	t.Run("enumerator cannot review", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPatch, "/v1/records/forest/"+createdID+"/status", enumToken,
			`{"status":"Approved"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("got %d, want 403", rec.Code)
		}
	})

	t.Run("admin approves the record", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPatch, "/v1/records/forest/"+createdID+"/status", adminToken,
			`{"status":"Approved"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("approved record cannot be re-reviewed", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPatch, "/v1/records/forest/"+createdID+"/status", adminToken,
			`{"status":"Rejected"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("got %d, want 422", rec.Code)
		}
	})

	t.Run("status outside the review vocabulary is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPatch, "/v1/records/forest/"+createdID+"/status", adminToken,
			`{"status":"Archived"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("got %d, want 422", rec.Code)
		}
	})

	t.Run("user management is super admin only", func(t *testing.T) {
		if rec := doJSON(t, e, http.MethodGet, "/v1/users", adminToken, ""); rec.Code != http.StatusForbidden {
			t.Fatalf("admin: got %d, want 403", rec.Code)
		}
		rec := doJSON(t, e, http.MethodGet, "/v1/users", superToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("super admin: got %d, want 200", rec.Code)
		}
		var resp struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Data) != 4 {
			t.Fatalf("roster size: got %d, want 4", len(resp.Data))
		}
	})

	t.Run("navigation menu is role filtered", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/v1/navigation", viewerToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", rec.Code)
		}
		var resp struct {
			Data []struct {
				Path string `json:"path"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Data) != 2 {
			t.Fatalf("viewer menu size: got %d, want 2", len(resp.Data))
		}
	})

	t.Run("dashboard summary reflects collections", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/v1/stats/summary", viewerToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", rec.Code)
		}
		var sum struct {
			System struct {
				TotalForestArea float64 `json:"total_forest_area"`
			} `json:"system"`
			Offices []string `json:"offices"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if sum.System.TotalForestArea <= 0 {
			t.Fatal("total forest area should be positive")
		}
		if len(sum.Offices) == 0 {
			t.Fatal("office list should not be empty")
		}
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		tok := login(t, e, "u-4")
		if rec := doJSON(t, e, http.MethodPost, "/auth/logout", tok, ""); rec.Code != http.StatusNoContent {
			t.Fatalf("logout: got %d, want 204", rec.Code)
		}
		if rec := doJSON(t, e, http.MethodGet, "/auth/me", tok, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("me after logout: got %d, want 401", rec.Code)
		}
	})

	t.Run("liveness probe", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/health", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", rec.Code)
		}
	})

	t.Run("readiness in standalone mode", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/health/ready", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
		}
	})
}
