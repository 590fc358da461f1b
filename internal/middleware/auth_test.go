package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/finance-insights/pkg/helpers"
)

type stubVerifier struct {
	uid   string
	err   error
	token string
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	s.token = idToken
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Token{UID: s.uid}, nil
}

func TestFirebaseAuth(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		verifier *stubVerifier
		status   int
		uid      string
	}{
		{"missing header", "", &stubVerifier{uid: "u1"}, http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", &stubVerifier{uid: "u1"}, http.StatusUnauthorized, ""},
		{"bad token", "Bearer abc", &stubVerifier{err: errors.New("expired")}, http.StatusUnauthorized, ""},
		{"empty uid", "Bearer abc", &stubVerifier{}, http.StatusUnauthorized, ""},
		{"ok", "bearer abc", &stubVerifier{uid: "u1"}, http.StatusOK, "u1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUID = UID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/analysis", nil).WithContext(helpers.TestCtx())
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			NewMiddleware(tc.verifier).FirebaseAuth(next).ServeHTTP(rr, req)

			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			if gotUID != tc.uid {
				t.Fatalf("uid = %q, want %q", gotUID, tc.uid)
			}
		})
	}
}

func TestDevVerifier(t *testing.T) {
	tok, err := DevVerifier{}.VerifyIDToken(context.Background(), "local-user")
	if err != nil || tok.UID != "local-user" {
		t.Fatalf("unexpected token %+v, err %v", tok, err)
	}
}
