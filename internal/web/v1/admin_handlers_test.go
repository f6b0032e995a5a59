package v1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

func TestSetUserActivity(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantToast logicv1.Toast
	}{
		{
			name:      "deactivated",
			status:    http.StatusOK,
			body:      `{"id":5,"name":"Leo","isActive":false}`,
			wantToast: logicv1.Toast{Kind: logicv1.ToastSuccess, Title: "User deactivated"},
		},
		{
			name:      "api error travels with the redirect",
			status:    http.StatusBadRequest,
			body:      `{"error":true,"message":"User has open bookings"}`,
			wantToast: logicv1.Toast{Kind: logicv1.ToastDestructive, Message: "User has open bookings"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent map[string]any
			r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
				if req.Method != http.MethodPut || req.URL.Path != "/users/5" {
					t.Errorf("unexpected API call %s %s", req.Method, req.URL.Path)
				}
				raw, _ := io.ReadAll(req.Body)
				_ = sonic.Unmarshal(raw, &sent)
				writeJSON(w, tt.status, tt.body)
			})
			cookie := seedAdmin(t, repo, domain.RoleAdmin)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/admin/users/5/activity", url.Values{"isActive": {"false"}}, cookie))

			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
			}
			if loc := w.Header().Get("Location"); loc != "/admin/users" {
				t.Fatalf("unexpected redirect %q", loc)
			}
			if v, ok := sent["isActive"]; !ok || v != false {
				t.Fatalf("expected isActive false, got %v", sent)
			}
			toast := flashFrom(t, w)
			if toast == nil {
				t.Fatal("expected a flash toast")
			}
			if toast.Kind != tt.wantToast.Kind {
				t.Fatalf("expected a %s toast, got %+v", tt.wantToast.Kind, toast)
			}
			if tt.wantToast.Title != "" && toast.Title != tt.wantToast.Title {
				t.Fatalf("expected title %q, got %q", tt.wantToast.Title, toast.Title)
			}
			if tt.wantToast.Message != "" && toast.Message != tt.wantToast.Message {
				t.Fatalf("expected message %q, got %q", tt.wantToast.Message, toast.Message)
			}
		})
	}
}

// slotBackend lists no doctors and counts slot creations.
func slotBackend(t *testing.T, created *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodGet && req.URL.Path == "/doctors":
			writeJSON(w, http.StatusOK, `{"data":[{"id":2,"name":"Dr. Lin"}],"currentPage":1,"totalPages":1}`)
		case req.Method == http.MethodPost && req.URL.Path == "/appointment-slots":
			raw, _ := io.ReadAll(req.Body)
			var in map[string]any
			_ = sonic.Unmarshal(raw, &in)
			*created = append(*created, in)
			writeJSON(w, http.StatusOK, `{"id":11,"doctorId":2,"date":"2026-03-01","startTime":"09:00","endTime":"09:30"}`)
		default:
			t.Errorf("unexpected API call %s %s", req.Method, req.URL.Path)
			http.NotFound(w, req)
		}
	}
}

func TestCreateAppointmentSlot(t *testing.T) {
	var created []map[string]any
	r, repo := newTestConsole(t, slotBackend(t, &created))
	cookie := seedAdmin(t, repo, domain.RoleClinicAdmin)

	form := url.Values{"doctorId": {"2"}, "date": {"2026-03-01"}, "startTime": {"09:00"}, "endTime": {"09:30"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/pet-clinics/slots", form, cookie))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/admin/pet-clinics/slots" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if len(created) != 1 {
		t.Fatalf("expected one slot created, got %d", len(created))
	}
	if created[0]["startTime"] != "09:00" || created[0]["endTime"] != "09:30" {
		t.Fatalf("unexpected slot %v", created[0])
	}
}

func TestCreateAppointmentSlot_RejectsBadTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"end before start", "10:00", "09:30", "Must be later than the start time."},
		{"end equals start", "10:00", "10:00", "Must be later than the start time."},
		{"not a clock", "9am", "10:00", "Enter a time as HH:MM."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created []map[string]any
			r, repo := newTestConsole(t, slotBackend(t, &created))
			cookie := seedAdmin(t, repo, domain.RoleClinicAdmin)

			form := url.Values{"doctorId": {"2"}, "date": {"2026-03-01"}, "startTime": {tt.start}, "endTime": {tt.end}}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/admin/pet-clinics/slots", form, cookie))

			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", w.Code)
			}
			if len(created) != 0 {
				t.Fatalf("expected no slot created, got %d", len(created))
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Fatalf("expected %q in the page", tt.want)
			}
		})
	}
}
