package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequestCarriesBaseHeaders(t *testing.T) {
	var gotUA, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotHost = r.Host
	}))
	defer srv.Close()

	s, err := New(5*time.Second, map[string]string{
		"User-Agent": "test-agent/1.0",
		"Host":       "virtual.example.com",
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, _, err := s.Get(context.Background(), srv.URL+"/"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotHost != "virtual.example.com" {
		t.Errorf("Host = %q, want the virtual host override", gotHost)
	}
}

func TestCookieRotationAcrossRequests(t *testing.T) {
	var secondRequestCookie string
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok-1"})
			return
		}
		if c, err := r.Cookie("csrftoken"); err == nil {
			secondRequestCookie = c.Value
		}
	}))
	defer srv.Close()

	s, err := New(5*time.Second, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()
	if _, _, err := s.Get(ctx, srv.URL+"/"); err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	if _, _, err := s.Get(ctx, srv.URL+"/"); err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if secondRequestCookie != "tok-1" {
		t.Errorf("second request carried cookie %q, want tok-1", secondRequestCookie)
	}
}

func TestOverrideRestores(t *testing.T) {
	s, err := New(5*time.Second, map[string]string{"A": "1"}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	restore := s.Override(map[string]string{"A": "2", "B": "3"})
	if s.Header("A") != "2" || s.Header("B") != "3" {
		t.Fatalf("override not applied: A=%q B=%q", s.Header("A"), s.Header("B"))
	}
	restore()
	if s.Header("A") != "1" {
		t.Errorf("A = %q after restore, want 1", s.Header("A"))
	}
	if s.Header("B") != "" {
		t.Errorf("B = %q after restore, want removed", s.Header("B"))
	}
}

func TestPostFormEncodesBody(t *testing.T) {
	var gotContentType, gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotField = r.FormValue("username")
	}))
	defer srv.Close()

	s, err := New(5*time.Second, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	form := map[string][]string{"username": {"alice"}}
	if _, _, err := s.PostForm(context.Background(), srv.URL+"/", form); err != nil {
		t.Fatalf("PostForm failed: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotField != "alice" {
		t.Errorf("username = %q", gotField)
	}
}
