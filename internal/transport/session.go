// Package transport holds the cookie- and header-carrying HTTP session
// every backend call goes through. The session is single-owner: callers
// must not interleave two logical operations on it, since identity
// overrides mutate the shared header map in place.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"userscraper/internal/telemetry"
)

type Session struct {
	client  *http.Client
	headers map[string]string
	metrics *telemetry.Metrics
}

// New builds a session with a fresh cookie jar and the given base headers.
// Every request carries the base headers; the jar rotates cookies across
// calls on its own.
func New(timeout time.Duration, base map[string]string, metrics *telemetry.Metrics) (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	headers := make(map[string]string, len(base))
	for k, v := range base {
		headers[k] = v
	}
	return &Session{
		client:  &http.Client{Jar: jar, Timeout: timeout},
		headers: headers,
		metrics: metrics,
	}, nil
}

func (s *Session) Get(ctx context.Context, rawURL string) ([]byte, int, error) {
	return s.do(ctx, http.MethodGet, rawURL, nil, "")
}

func (s *Session) PostForm(ctx context.Context, rawURL string, form url.Values) ([]byte, int, error) {
	return s.do(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (s *Session) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build %s request: %w", method, err)
	}
	for k, v := range s.headers {
		// the Host header is special-cased by net/http
		if k == "Host" {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	s.metrics.Request(req.URL.Path)
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	return data, resp.StatusCode, nil
}

func (s *Session) SetHeader(name, value string) {
	s.headers[name] = value
}

func (s *Session) Header(name string) string {
	return s.headers[name]
}

// Override swaps in the given headers and returns a func that puts the
// previous values back, removing headers that were not set before. Callers
// defer the restore so it runs on every outcome.
func (s *Session) Override(headers map[string]string) (restore func()) {
	prev := make(map[string]string, len(headers))
	had := make(map[string]bool, len(headers))
	for k, v := range headers {
		old, ok := s.headers[k]
		prev[k] = old
		had[k] = ok
		s.headers[k] = v
	}
	return func() {
		for k := range headers {
			if had[k] {
				s.headers[k] = prev[k]
			} else {
				delete(s.headers, k)
			}
		}
	}
}

func (s *Session) Cookies(u *url.URL) []*http.Cookie {
	return s.client.Jar.Cookies(u)
}

func (s *Session) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.client.Jar.SetCookies(u, cookies)
}

// CookieValue returns the named cookie's value for the given URL, or ""
// when absent.
func (s *Session) CookieValue(u *url.URL, name string) string {
	for _, c := range s.client.Jar.Cookies(u) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
