package v1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
)

func TestPasswordRecovery_Chain(t *testing.T) {
	var resetBody map[string]any
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/auth/forgot-password":
			writeJSON(w, http.StatusOK, `{"message":"Code sent"}`)
		case "/auth/verify-otp":
			writeJSON(w, http.StatusOK, `{"token":"reset-tok"}`)
		case "/auth/reset-password":
			raw, _ := io.ReadAll(req.Body)
			_ = sonic.Unmarshal(raw, &resetBody)
			writeJSON(w, http.StatusOK, `{"message":"Password changed"}`)
		default:
			t.Errorf("unexpected API call %s", req.URL.Path)
			http.NotFound(w, req)
		}
	})

	steps := []struct {
		path string
		form url.Values
		want string
	}{
		{"/forgot-password", url.Values{"email": {"mia@example.com"}}, "/verify-otp?email=mia%40example.com"},
		{"/verify-otp", url.Values{"email": {"mia@example.com"}, "otp": {"123456"}}, "/reset-password?token=reset-tok"},
		{"/reset-password", url.Values{"token": {"reset-tok"}, "password": {"new-password"}, "confirmPassword": {"new-password"}}, "/login"},
	}
	for _, step := range steps {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm(step.path, step.form))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected 303, got %d: %s", step.path, w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != step.want {
			t.Fatalf("%s: expected redirect to %q, got %q", step.path, step.want, loc)
		}
	}
	if resetBody["token"] != "reset-tok" || resetBody["password"] != "new-password" {
		t.Fatalf("unexpected reset body %v", resetBody)
	}
	if _, ok := resetBody["confirmPassword"]; ok {
		t.Fatal("the confirmation must not be sent")
	}
}

func TestVerifyOTP_RejectedCodeStays(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":true,"message":"Code expired"}`)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/verify-otp", url.Values{"email": {"mia@example.com"}, "otp": {"123456"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Location") != "" {
		t.Fatal("expected no navigation")
	}
	if !strings.Contains(w.Body.String(), "Code expired") {
		t.Fatal("expected the API message")
	}
}

func TestUserProfile_RefreshFailureStillSucceeds(t *testing.T) {
	var patches int
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodPatch && req.URL.Path == "/users/42":
			patches++
			writeJSON(w, http.StatusOK, `{"id":42,"name":"Mia Park","email":"mia@example.com"}`)
		case req.Method == http.MethodGet && req.URL.Path == "/users/42":
			w.WriteHeader(http.StatusBadGateway)
		default:
			t.Errorf("unexpected API call %s %s", req.Method, req.URL.Path)
			http.NotFound(w, req)
		}
	})
	cookie := seedUser(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/profile", url.Values{"name": {"Mia Park"}, "email": {"mia@example.com"}}, cookie))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/profile" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if patches != 1 {
		t.Fatalf("expected one PATCH, got %d", patches)
	}
	if toast := flashFrom(t, w); toast == nil || toast.Title != "Profile updated" {
		t.Fatalf("expected a success flash, got %+v", toast)
	}
}

func TestFlashCookie_FollowsSessionSecure(t *testing.T) {
	cfg := config.SessionConfig{CookieName: testCookie, MaxAge: time.Hour, Secure: true}
	r, _ := newTestConsoleWith(t, cfg, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"message":"Code sent"}`)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/forgot-password", url.Values{"email": {"mia@example.com"}}))

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookie {
			found = true
			if !c.Secure {
				t.Fatal("expected a secure flash cookie")
			}
		}
	}
	if !found {
		t.Fatal("expected a flash cookie")
	}
}
