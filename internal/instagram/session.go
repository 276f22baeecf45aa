package instagram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type sessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sessionBlob struct {
	Cookies []sessionCookie `json:"cookies"`
}

// SaveSession writes the session's cookie bundle to w as an opaque blob.
// Callers own the sink; the conventional location is
// <data_dir>/<username>-session.dat or the equivalent redis key.
func (c *Client) SaveSession(w io.Writer) error {
	var blob sessionBlob
	for _, ck := range c.sess.Cookies(c.siteURL()) {
		blob.Cookies = append(blob.Cookies, sessionCookie{Name: ck.Name, Value: ck.Value})
	}
	if err := json.NewEncoder(w).Encode(blob); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return nil
}

// LoadSession restores a cookie bundle persisted by SaveSession and
// re-derives the X-CSRFToken header from the csrftoken cookie. It fails
// with ErrCorruptSession when that cookie is absent, leaving the client
// unauthenticated. A successful restore puts the client in the Unknown
// state until IsLoggedIn verifies it.
func (c *Client) LoadSession(r io.Reader) error {
	var blob sessionBlob
	if err := json.NewDecoder(r).Decode(&blob); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	var token string
	cookies := make([]*http.Cookie, 0, len(blob.Cookies))
	for _, ck := range blob.Cookies {
		cookies = append(cookies, &http.Cookie{Name: ck.Name, Value: ck.Value})
		if ck.Name == "csrftoken" {
			token = ck.Value
		}
	}
	if token == "" {
		c.state = Unauthenticated
		return ErrCorruptSession
	}
	c.sess.SetCookies(c.siteURL(), cookies)
	c.sess.SetHeader("X-CSRFToken", token)
	c.state = Unknown
	return nil
}
