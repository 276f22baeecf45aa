package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Login authenticates the session. The return value is a tagged result:
// (nil, nil) means the client is authenticated, a non-nil challenge means
// the account wants a two-factor code and the caller should continue with
// VerifyTwoFactor, and a non-nil error means the login was rejected.
func (c *Client) Login(ctx context.Context, username, password string) (*TwoFactorChallenge, error) {
	// unauthenticated fetch of the site root seeds the csrftoken cookie
	if _, _, err := c.sess.Get(ctx, c.baseURL+"/"); err != nil {
		return nil, err
	}
	token := c.sess.CookieValue(c.siteURL(), "csrftoken")
	if token == "" {
		return nil, fmt.Errorf("no csrftoken cookie after initial request")
	}
	c.sess.SetHeader("X-CSRFToken", token)

	form := url.Values{}
	form.Set("enc_password", fmt.Sprintf("#PWD_INSTAGRAM_BROWSER:0:%d:%s", time.Now().Unix(), password))
	form.Set("username", username)
	body, _, err := c.sess.PostForm(ctx, c.baseURL+"/accounts/login/ajax/", form)
	if err != nil {
		c.metrics.Login("failed")
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.metrics.Login("failed")
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	if resp.TwoFactorRequired {
		c.challenge = &TwoFactorChallenge{
			ID:       resp.TwoFactorInfo.TwoFactorIdentifier,
			Username: username,
		}
		c.state = AwaitingTwoFactor
		c.metrics.Login("two_factor")
		c.log.Printf("two-factor required for %s", username)
		return c.challenge, nil
	}
	if resp.Status != "ok" {
		c.metrics.Login("failed")
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrAuthentication, resp.Message)
		}
		return nil, fmt.Errorf("%w: unexpected response: %s", ErrAuthentication, body)
	}
	if !resp.Authenticated {
		c.metrics.Login("failed")
		if resp.User {
			return nil, fmt.Errorf("%w: incorrect password for %s", ErrAuthentication, username)
		}
		return nil, fmt.Errorf("%w: username %s doesn't exist", ErrAuthentication, username)
	}

	// one more request finalizes the session cookies
	if _, _, err := c.sess.Get(ctx, c.baseURL+"/"); err != nil {
		return nil, err
	}
	c.state = Authenticated
	c.metrics.Login("ok")
	c.log.Printf("logged in as %s", username)
	return nil, nil
}

// VerifyTwoFactor completes a pending challenge. An incorrect code leaves
// the challenge pending so the caller can retry; any other backend verdict
// consumes it, including non-ok responses that are not code_invalid. That
// last leniency mirrors the backend's observed handling and is flagged for
// product review.
func (c *Client) VerifyTwoFactor(ctx context.Context, code string) error {
	if c.challenge == nil {
		return ErrNoChallengePending
	}

	form := url.Values{}
	form.Set("identifier", c.challenge.ID)
	form.Set("username", c.challenge.Username)
	form.Set("verificationCode", code)
	body, _, err := c.sess.PostForm(ctx, c.baseURL+"/accounts/login/ajax/two_factor/", form)
	if err != nil {
		return err
	}

	var resp twoFactorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode two-factor response: %w", err)
	}
	if resp.Status != "ok" && strings.Contains(resp.ErrorType, "code_invalid") {
		// challenge stays pending: the caller may retry with a fresh code
		return fmt.Errorf("%w: incorrect 2FA code", ErrAuthentication)
	}
	c.challenge = nil
	if resp.Status != "ok" {
		c.log.Printf("two-factor verification returned status %q, continuing", resp.Status)
	}
	c.state = Authenticated
	return nil
}

// IsLoggedIn is a best-effort liveness probe: it fetches the home page and
// looks for the marker the web client renders for anonymous visitors.
// There is no protocol-guaranteed endpoint for this.
func (c *Client) IsLoggedIn(ctx context.Context) (bool, error) {
	body, _, err := c.sess.Get(ctx, c.baseURL+"/")
	if err != nil {
		return false, err
	}
	if strings.Contains(string(body), "not-logged-in") {
		c.state = Unauthenticated
		return false, nil
	}
	c.state = Authenticated
	return true, nil
}
