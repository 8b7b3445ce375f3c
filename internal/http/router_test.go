package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"mof-mlip-agent/internal/agent"
	"mof-mlip-agent/internal/handlers/mocks"
	"mof-mlip-agent/internal/memory"
	"mof-mlip-agent/internal/storage"
)

type okPinger struct{}

func (okPinger) PingContext(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockAgentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAgentService(ctrl)
	router := NewRouter(&Deps{Agent: svc, DB: okPinger{}})
	return router, svc
}

func TestRouter_Run(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Run(gomock.Any(), "relax UiO-66").Return(agent.RunResult{
		ExpID:  "mof-20260830-deadbeef",
		Status: agent.StatusCompleted,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/run", strings.NewReader(`{"query":"relax UiO-66"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var result agent.RunResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if result.ExpID != "mof-20260830-deadbeef" {
		t.Errorf("exp_id = %q", result.ExpID)
	}
}

func TestRouter_Memory(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().ListMemory(gomock.Any()).Return([]memory.Record{{ExpID: "a"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/memory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_SpecByID(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().GetSpec(gomock.Any(), "mof-20260830-deadbeef").Return(storage.SpecRow{
		ExpID: "mof-20260830-deadbeef",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/specs/mof-20260830-deadbeef", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var row storage.SpecRow
	if err := json.Unmarshal(rec.Body.Bytes(), &row); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if row.ExpID != "mof-20260830-deadbeef" {
		t.Errorf("exp_id = %q", row.ExpID)
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/run", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
