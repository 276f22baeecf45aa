// Package instagram implements the authenticated client: login with
// optional two-factor step, session persistence, profile lookup and
// cursor-paginated relationship queries.
package instagram

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"userscraper/internal/telemetry"
	"userscraper/internal/transport"
)

const (
	defaultBaseURL   = "https://www.instagram.com"
	defaultMobileURL = "https://i.instagram.com"

	webUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:100.0) Gecko/20100101 Firefox/100.0"
	mobileUserAgent = "Instagram 219.0.0.12.117 Android"

	// fixed app id the backend requires on web requests
	webAppID = "936619743392459"
)

// Options configures a Client. Zero values fall back to production
// defaults; BaseURL/MobileURL exist so tests can point the client at a
// local backend.
type Options struct {
	Timeout   time.Duration
	Logger    *log.Logger
	Metrics   *telemetry.Metrics
	BaseURL   string
	MobileURL string
}

// Client owns the transport session and the login state machine. It is
// not safe for concurrent use: the profile identity override and the
// cookie jar are shared mutable state.
type Client struct {
	sess      *transport.Session
	log       *log.Logger
	metrics   *telemetry.Metrics
	baseURL   string
	mobileURL string

	state     State
	challenge *TwoFactorChallenge
}

func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MobileURL == "" {
		opts.MobileURL = defaultMobileURL
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	// Accept-Encoding is left to net/http so gzip stays transparent.
	sess, err := transport.New(opts.Timeout, map[string]string{
		"Accept-Language":  "en-US,en;q=0.5",
		"Connection":       "keep-alive",
		"Host":             base.Host,
		"Origin":           opts.BaseURL,
		"Referer":          opts.BaseURL + "/",
		"User-Agent":       webUserAgent,
		"X-Requested-With": "XMLHttpRequest",
		"X-IG-App-ID":      webAppID,
		"X-Web-Device-Id":  uuid.NewString(),
	}, opts.Metrics)
	if err != nil {
		return nil, err
	}
	return &Client{
		sess:      sess,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		baseURL:   opts.BaseURL,
		mobileURL: opts.MobileURL,
		state:     Unauthenticated,
	}, nil
}

// State reports the client's position in the login state machine.
func (c *Client) State() State {
	return c.state
}

func (c *Client) siteURL() *url.URL {
	u, _ := url.Parse(c.baseURL)
	return u
}
