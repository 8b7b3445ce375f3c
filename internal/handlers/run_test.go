package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"mof-mlip-agent/internal/agent"
	"mof-mlip-agent/internal/handlers/mocks"
	"mof-mlip-agent/internal/schema"
)

func TestRunHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		setupMock  func(*mocks.MockAgentService)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "completed run",
			method: http.MethodPost,
			body:   `{"query":"relax UiO-66"}`,
			setupMock: func(m *mocks.MockAgentService) {
				m.EXPECT().Run(gomock.Any(), "relax UiO-66").Return(agent.RunResult{
					ExpID:  "mof-20260830-deadbeef",
					Status: agent.StatusCompleted,
					Verdict: schema.NoveltyVerdict{
						Status: schema.VerdictPass,
					},
					OutputPath: "outputs/mof-20260830-deadbeef.json",
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var result agent.RunResult
				if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
					t.Fatalf("invalid response JSON: %v", err)
				}
				if result.Status != agent.StatusCompleted {
					t.Errorf("status = %q, want completed", result.Status)
				}
				if result.ExpID != "mof-20260830-deadbeef" {
					t.Errorf("exp_id = %q", result.ExpID)
				}
			},
		},
		{
			name:   "rejected run",
			method: http.MethodPost,
			body:   `{"query":"CO2 in MOF-5"}`,
			setupMock: func(m *mocks.MockAgentService) {
				m.EXPECT().Run(gomock.Any(), "CO2 in MOF-5").Return(agent.RunResult{
					ExpID:  "mof-20260830-cafe0000",
					Status: agent.StatusRejected,
					Verdict: schema.NoveltyVerdict{
						Status:    schema.VerdictReject,
						Rationale: "well studied",
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var result agent.RunResult
				if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
					t.Fatalf("invalid response JSON: %v", err)
				}
				if result.Status != agent.StatusRejected {
					t.Errorf("status = %q, want rejected", result.Status)
				}
				if result.Spec != nil {
					t.Error("rejected result should carry no spec")
				}
			},
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			body:       "",
			setupMock:  func(m *mocks.MockAgentService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid body",
			method:     http.MethodPost,
			body:       "{not json",
			setupMock:  func(m *mocks.MockAgentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "validation error maps to 400",
			method: http.MethodPost,
			body:   `{"query":""}`,
			setupMock: func(m *mocks.MockAgentService) {
				m.EXPECT().Run(gomock.Any(), "").Return(agent.RunResult{}, &agent.ValidationError{
					Field:   "query",
					Message: "cannot be empty",
				})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "service failure maps to 500",
			method: http.MethodPost,
			body:   `{"query":"relax UiO-66"}`,
			setupMock: func(m *mocks.MockAgentService) {
				m.EXPECT().Run(gomock.Any(), "relax UiO-66").
					Return(agent.RunResult{}, errors.New("pipeline run failed: boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockAgentService(ctrl)
			tt.setupMock(svc)

			handler := NewRunHandler(svc)
			req := httptest.NewRequest(tt.method, "/api/run", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}
