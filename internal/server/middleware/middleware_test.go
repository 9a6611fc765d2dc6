package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eduplay/console/internal/service"
)

func TestRequestID_Generated(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if captured == "" {
		t.Fatal("no request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Error("response header does not match context request ID")
	}
}

func TestRequestID_Passthrough(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if captured != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", captured)
	}
}

func TestAuthenticate_UniformRejection(t *testing.T) {
	authSvc := service.NewAuthService("test-secret", 0)
	expiring := service.NewAuthService("test-secret", time.Millisecond)

	expiredToken, err := expiring.IssueToken("a1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	h := Authenticate(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with invalid credentials")
	}))

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic Zm9vOmJhcg==",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer garbage",
		"expired token":  "Bearer " + expiredToken,
	}

	var firstBody string
	for name, header := range cases {
		req := httptest.NewRequest("GET", "/api/admins", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rr.Code)
		}
		if firstBody == "" {
			firstBody = rr.Body.String()
		} else if rr.Body.String() != firstBody {
			t.Errorf("%s: response body differs from other rejections; the 401 must not leak the cause", name)
		}
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authSvc := service.NewAuthService("test-secret", 0)
	token, err := authSvc.IssueToken("admin-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	var captured string
	h := Authenticate(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = AdminID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/admins", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if captured != "admin-42" {
		t.Errorf("AdminID = %q, want admin-42", captured)
	}
}

func TestAdminID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := AdminID(req.Context()); got != "" {
		t.Errorf("AdminID on bare context = %q, want empty", got)
	}
}
