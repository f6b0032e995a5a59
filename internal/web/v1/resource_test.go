package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// roomBackend serves room 7 with an uploaded picture and answers PATCH with patchStatus/patchBody.
type roomBackend struct {
	mu          sync.Mutex
	patches     int
	deleted     []string
	patchStatus int
	patchBody   string
}

func (b *roomBackend) serve(w http.ResponseWriter, req *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case req.Method == http.MethodGet && req.URL.Path == "/rooms/7":
		writeJSON(w, http.StatusOK, `{"id":7,"name":"Sunroom","roomNo":"12","price":500,"images":["https://files.example.com/uploads/old.png"]}`)
	case req.Method == http.MethodPost && req.URL.Path == "/files/upload":
		writeJSON(w, http.StatusOK, `{"url":"https://files.example.com/uploads/new.png","key":"new.png"}`)
	case req.Method == http.MethodPatch && req.URL.Path == "/rooms/7":
		b.patches++
		writeJSON(w, b.patchStatus, b.patchBody)
	case req.Method == http.MethodDelete && strings.HasPrefix(req.URL.Path, "/files/delete/"):
		b.deleted = append(b.deleted, strings.TrimPrefix(req.URL.Path, "/files/delete/"))
		writeJSON(w, http.StatusOK, `{"message":"deleted"}`)
	default:
		http.NotFound(w, req)
	}
}

var roomEdit = map[string]string{"name": "Sunroom", "roomNo": "12", "price": "500"}

func TestUpdateRoom_RejectedEditKeepsOldImage(t *testing.T) {
	b := &roomBackend{patchStatus: http.StatusBadRequest, patchBody: `{"error":true,"message":"Room number taken"}`}
	r, repo := newTestConsole(t, b.serve)
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postMultipart(t, "/admin/pet-cafe/cafe-rooms/7", roomEdit, "new.png", cookie))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Room number taken") {
		t.Fatal("expected the API message")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.patches != 1 {
		t.Fatalf("expected one PATCH, got %d", b.patches)
	}
	if len(b.deleted) != 0 {
		t.Fatalf("the room still references the old image, got deletes %v", b.deleted)
	}
}

func TestUpdateRoom_SavedEditDeletesOldImage(t *testing.T) {
	b := &roomBackend{patchStatus: http.StatusOK, patchBody: `{"id":7,"name":"Sunroom"}`}
	r, repo := newTestConsole(t, b.serve)
	cookie := seedAdmin(t, repo, domain.RoleCafeAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postMultipart(t, "/admin/pet-cafe/cafe-rooms/7", roomEdit, "new.png", cookie))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.deleted) != 1 || b.deleted[0] != "old.png" {
		t.Fatalf("expected old.png deleted once, got %v", b.deleted)
	}
}
