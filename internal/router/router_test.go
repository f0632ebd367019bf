package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AtharvaZ/Portfolio-website/internal/auth"
	"github.com/AtharvaZ/Portfolio-website/internal/config"
	"github.com/AtharvaZ/Portfolio-website/internal/store/jsonfile"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("jsonfile.New() error = %v", err)
	}
	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Server.WebDir = t.TempDir()
	sessions := auth.NewSessionManager("admin", "secret")

	return SetupRouter(cfg, st, sessions)
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicListNeedsNoAuth(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/projects", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/projects status = %d, want 200", w.Code)
	}

	var body struct {
		Success  bool `json:"success"`
		Projects []struct {
			ID int `json:"id"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Success || len(body.Projects) != 4 {
		t.Errorf("fresh catalog = %+v, want success with 4 seeded projects", body)
	}
}

func TestMutationsRequireSession(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/resume"},
		{http.MethodGet, "/api/admin/verify"},
		{http.MethodGet, "/api/admin/export/xlsx"},
	}
	for _, tc := range cases {
		w := do(r, tc.method, tc.path, `{"title":"x"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	r := newTestRouter(t)

	// bad credentials
	w := do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}

	// good credentials
	w = do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"secret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", w.Code)
	}
	var loginBody struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginBody); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if !loginBody.Success || loginBody.Token == "" {
		t.Fatalf("login body = %+v, want success with token", loginBody)
	}
	token := loginBody.Token

	// token passes verify and gates mutations
	if w := do(r, http.MethodGet, "/api/admin/verify", "", token); w.Code != http.StatusOK {
		t.Errorf("verify status = %d, want 200", w.Code)
	}

	w = do(r, http.MethodPost, "/api/projects", `{"title":"New","tech":["Go"],"links":{"github":"#"}}`, token)
	if w.Code != http.StatusOK {
		t.Errorf("create status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	// empty title is a domain validation error
	w = do(r, http.MethodPost, "/api/projects", `{"title":"  "}`, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("create empty title status = %d, want 400", w.Code)
	}

	// unknown id maps to 404
	w = do(r, http.MethodDelete, "/api/projects/999", "", token)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete unknown status = %d, want 404", w.Code)
	}

	// logout revokes, second logout stays 200
	if w := do(r, http.MethodPost, "/api/admin/logout", "", token); w.Code != http.StatusOK {
		t.Errorf("logout status = %d, want 200", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/admin/verify", "", token); w.Code != http.StatusUnauthorized {
		t.Errorf("verify after logout status = %d, want 401", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/admin/logout", "", token); w.Code != http.StatusOK {
		t.Errorf("second logout status = %d, want 200 (idempotent)", w.Code)
	}
}

func TestResumeAbsentIsSoftFailure(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/resume", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/resume status = %d, want 200 even when absent", w.Code)
	}
	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Success {
		t.Errorf("absent resume reported success=true")
	}

	if w := do(r, http.MethodGet, "/api/resume/view", "", ""); w.Code != http.StatusNotFound {
		t.Errorf("view absent resume status = %d, want 404", w.Code)
	}
}

func TestContactWithoutEmailConfig(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/contact",
		`{"name":"Visitor","email":"v@example.com","message":"hi"}`, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("contact without email config status = %d, want 500", w.Code)
	}
}
