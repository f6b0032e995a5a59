package v1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func validCard() url.Values {
	return url.Values{
		"cardName":   {"Mia Park"},
		"cardNumber": {"4242424242424242"},
		"expiry":     {"12/30"},
		"cvc":        {"123"},
	}
}

func TestPurchase_SendsOnlyUserID(t *testing.T) {
	var bodies []string
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodPost && req.URL.Path == "/packages/3/purchase":
			raw, _ := io.ReadAll(req.Body)
			bodies = append(bodies, string(raw))
			if got := req.Header.Get("Authorization"); got != "Bearer user-token" {
				t.Errorf("expected the user token, got %q", got)
			}
			writeJSON(w, http.StatusOK, `{"message":"Purchased"}`)
		default:
			t.Errorf("unexpected API call %s %s", req.Method, req.URL.Path)
			http.NotFound(w, req)
		}
	})
	cookie := seedUser(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/packages/3/purchase", validCard(), cookie))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/packages" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if len(bodies) != 1 {
		t.Fatalf("expected one purchase call, got %d", len(bodies))
	}
	if got := strings.TrimSpace(bodies[0]); got != `{"userId":42}` {
		t.Fatalf("expected only the user id, got %s", got)
	}
}

func TestPurchase_InvalidCardNeverCallsAPI(t *testing.T) {
	var purchases int
	r, repo := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodGet && req.URL.Path == "/packages/3":
			writeJSON(w, http.StatusOK, `{"id":3,"name":"Gold","price":120}`)
		case strings.HasSuffix(req.URL.Path, "/purchase"):
			purchases++
			writeJSON(w, http.StatusOK, `{"message":"Purchased"}`)
		default:
			http.NotFound(w, req)
		}
	})
	cookie := seedUser(t, repo)

	form := validCard()
	form.Set("cardNumber", "1234")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/packages/3/purchase", form, cookie))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if purchases != 0 {
		t.Fatalf("expected no purchase call, got %d", purchases)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Enter a valid card number.") {
		t.Fatal("expected the card number message")
	}
	if strings.Contains(body, "4242") || strings.Contains(body, `value="1234"`) {
		t.Fatal("card details must not be echoed back")
	}
}

func TestPurchase_RequiresUser(t *testing.T) {
	r, _ := newTestConsole(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected API call %s", req.URL.Path)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/packages/3/purchase", validCard()))

	if w.Code != http.StatusSeeOther || !strings.HasPrefix(w.Header().Get("Location"), "/login") {
		t.Fatalf("expected a redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}
}
