package v1

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/repository/memory"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

const testCookie = "petopia_session"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestConsole wires the console against a fake backend API.
func newTestConsole(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *memory.SessionRepository) {
	t.Helper()
	return newTestConsoleWith(t, config.SessionConfig{CookieName: testCookie, MaxAge: time.Hour}, backend)
}

func newTestConsoleWith(t *testing.T, cfg config.SessionConfig, backend http.HandlerFunc) (*gin.Engine, *memory.SessionRepository) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	repo := memory.NewSessionRepository()
	sessions := logicv1.NewSessionService(client, repo, time.Hour)
	h := NewHandler(client, sessions, cfg)

	r := gin.New()
	if err := Setup(r, h); err != nil {
		t.Fatalf("failed to set up routes: %v", err)
	}
	return r, repo
}

func seedAdmin(t *testing.T, repo *memory.SessionRepository, role domain.AdminRole) *http.Cookie {
	t.Helper()
	sess := &domain.Session{
		ID:          "admin-session",
		Kind:        domain.ActorAdmin,
		AccessToken: "admin-token",
		Admin:       &domain.Admin{ID: 1, Name: "Ada", Email: "ada@example.com", Role: role},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return &http.Cookie{Name: testCookie, Value: sess.ID}
}

func seedUser(t *testing.T, repo *memory.SessionRepository) *http.Cookie {
	t.Helper()
	sess := &domain.Session{
		ID:          "user-session",
		Kind:        domain.ActorUser,
		AccessToken: "user-token",
		User:        &domain.User{ID: 42, Name: "Mia", Email: "mia@example.com"},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return &http.Cookie{Name: testCookie, Value: sess.ID}
}

func postForm(target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// postMultipart posts fields plus one image file, the way the edit forms submit.
func postMultipart(t *testing.T, target string, fields map[string]string, filename string, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write([]byte("png-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// flashFrom decodes the flash cookie set by the response.
func flashFrom(t *testing.T, w *httptest.ResponseRecorder) *logicv1.Toast {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name != flashCookie || c.Value == "" {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(c.Value)
		if err != nil {
			t.Fatalf("bad flash cookie: %v", err)
		}
		var toast logicv1.Toast
		if err := sonic.Unmarshal(raw, &toast); err != nil {
			t.Fatalf("bad flash payload: %v", err)
		}
		return &toast
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func hasCookie(w *httptest.ResponseRecorder, name string) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == name && c.Value != "" {
			return true
		}
	}
	return false
}

func TestCreateRoom_PostsOnceAndRedirects(t *testing.T) {
	var posts atomic.Int32
	var got map[string]any
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost || req.URL.Path != "/rooms" {
			t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
			http.NotFound(w, req)
			return
		}
		posts.Add(1)
		if auth := req.Header.Get("Authorization"); auth != "Bearer admin-token" {
			t.Errorf("expected bearer token, got %q", auth)
		}
		raw, _ := io.ReadAll(req.Body)
		if err := sonic.Unmarshal(raw, &got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Sunroom","roomNo":"12","price":500}`))
	})
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/pet-cafe/cafe-rooms", url.Values{
		"name":   {"Sunroom"},
		"roomNo": {"12"},
		"price":  {"500"},
	}, cookie))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/admin/pet-cafe/cafe-rooms" {
		t.Fatalf("expected redirect to the rooms list, got %q", loc)
	}
	if n := posts.Load(); n != 1 {
		t.Fatalf("expected exactly one POST /rooms, got %d", n)
	}
	if got["name"] != "Sunroom" || got["roomNo"] != "12" || got["price"] != float64(500) {
		t.Fatalf("unexpected request body %v", got)
	}
	if !hasCookie(w, flashCookie) {
		t.Fatal("expected a success flash cookie")
	}
}

func TestCreateRoom_InvalidFormNeverCallsAPI(t *testing.T) {
	var calls atomic.Int32
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		http.NotFound(w, req)
	})
	cookie := seedAdmin(t, repo, domain.RoleSuperAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/pet-cafe/cafe-rooms", url.Values{"roomNo": {"12"}, "price": {"500"}}, cookie))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no API call, got %d", calls.Load())
	}
	if !strings.Contains(w.Body.String(), "This field is required.") {
		t.Fatalf("expected a field message, got %s", w.Body.String())
	}
	if w.Header().Get("Location") != "" {
		t.Fatal("expected no redirect")
	}
}

func TestCreateRoom_APIErrorStaysOnPage(t *testing.T) {
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":true,"message":"Room number already exists"}`))
	})
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/pet-cafe/cafe-rooms", url.Values{
		"name": {"Sunroom"}, "roomNo": {"12"}, "price": {"500"},
	}, cookie))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Room number already exists") {
		t.Fatalf("expected API message in toast, got %s", body)
	}
	if !strings.Contains(body, `value="Sunroom"`) {
		t.Fatal("expected the submitted values to be kept")
	}
	if hasCookie(w, flashCookie) {
		t.Fatal("expected no success flash")
	}
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/auth/admin-login" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":true,"message":"Invalid credentials"}`))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong-password"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("expected the API message, got %s", w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Fatalf("expected no navigation, got %q", loc)
	}
	if hasCookie(w, testCookie) {
		t.Fatal("expected no session cookie")
	}
	if strings.Contains(w.Body.String(), "wrong-password") {
		t.Fatal("password must not be echoed")
	}
}

func TestAdminLogin_SetsSessionAndHonorsNext(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"opaque","admin":{"id":1,"name":"Ada","email":"ada@example.com","role":"admin"}}`))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login?next=%2Fadmin%2Fusers", url.Values{"email": {"ada@example.com"}, "password": {"password1"}}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/admin/users" {
		t.Fatalf("expected redirect to next, got %q", loc)
	}
	if !hasCookie(w, testCookie) {
		t.Fatal("expected a session cookie")
	}
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"/admin/users", "/admin/users"},
		{"", "/fallback"},
		{"https://evil.example.com", "/fallback"},
		{"//evil.example.com", "/fallback"},
	}
	for _, tt := range tests {
		if got := safeNext(tt.next, "/fallback"); got != tt.want {
			t.Errorf("safeNext(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected API call %s", req.URL.Path)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login?next=%2Fadmin%2Fdashboard" {
		t.Fatalf("unexpected redirect %q", loc)
	}
}

func TestRequireAdmin_RoleScoped(t *testing.T) {
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected API call %s", req.URL.Path)
	})
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/pet-clinics/doctors", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdmin_OwnerPages(t *testing.T) {
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[],"currentPage":1,"totalPages":1}`)
	})

	tests := []struct {
		role domain.AdminRole
		path string
		want int
	}{
		{domain.RoleAdmin, "/admin/admins", http.StatusForbidden},
		{domain.RoleAdmin, "/admin/packages", http.StatusForbidden},
		{domain.RoleAdmin, "/admin/pet-cafe/cafe-rooms", http.StatusOK},
		{domain.RoleSuperAdmin, "/admin/admins", http.StatusOK},
		{domain.RoleSuperAdmin, "/admin/packages", http.StatusOK},
	}
	for _, tt := range tests {
		cookie := seedAdmin(t, repo, tt.role)
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.role, tt.path, tt.want, w.Code)
		}
		if w.Code == http.StatusOK {
			shown := strings.Contains(w.Body.String(), `href="/admin/admins"`)
			if shown != (tt.role == domain.RoleSuperAdmin) {
				t.Errorf("%s %s: admins nav item shown = %v", tt.role, tt.path, shown)
			}
		}
	}
}

func TestRoomList_RendersPageAndPager(t *testing.T) {
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		if q := req.URL.RawQuery; q != "page=2&pageSize=10" {
			t.Errorf("unexpected query %q", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":4,"name":"Sunroom","roomNo":"12","price":500}],"currentPage":2,"totalPages":3,"totalCount":21}`))
	})
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/pet-cafe/cafe-rooms?page=2", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Sunroom", "Page 2 of 3", "/admin/pet-cafe/cafe-rooms/4/edit"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestRoomList_GoToRedirects(t *testing.T) {
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"currentPage":1,"totalPages":3,"totalCount":21}`))
	})
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/pet-cafe/cafe-rooms?goto=3", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/pet-cafe/cafe-rooms?page=3" {
		t.Fatalf("unexpected redirect %q", loc)
	}
}

func TestFlashToast_RenderedOnce(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {})

	raw, err := sonic.Marshal(logicv1.Toast{Kind: logicv1.ToastSuccess, Title: "Room created", Message: "Done."})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: base64.RawURLEncoding.EncodeToString(raw)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "Room created") {
		t.Fatal("expected the flash toast")
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the flash cookie to be cleared")
	}
}

func TestRegisterWizard_Steps(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected API call %s", req.URL.Path)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/register", url.Values{"_action": {"next"}, "name": {""}}))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an invalid step, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `name="address"`) {
		t.Fatal("expected to stay on the first step")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/register", url.Values{"_action": {"next"}, "name": {"Mia"}}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="address"`) {
		t.Fatal("expected the address step")
	}
}

func TestRegisterWizard_BadState(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/register", url.Values{"_action": {"next"}, "_state": {"%%%"}}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "start again") {
		t.Fatal("expected the restart message")
	}
}
