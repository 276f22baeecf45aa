package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Profile fetches an account snapshot through the mobile API host. The
// call temporarily switches the session to the mobile client identity and
// restores the web identity on every outcome.
func (c *Client) Profile(ctx context.Context, username string) (*UserProfile, error) {
	mobile, err := url.Parse(c.mobileURL)
	if err != nil {
		return nil, fmt.Errorf("mobile url: %w", err)
	}
	restore := c.sess.Override(map[string]string{
		"Host":       mobile.Host,
		"User-Agent": mobileUserAgent,
	})
	defer restore()

	body, status, err := c.sess.Get(ctx, c.mobileURL+"/api/v1/users/web_profile_info/?username="+url.QueryEscape(username))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("profile lookup for %s: unexpected status %d", username, status)
	}

	var raw struct {
		Data struct {
			User struct {
				ID         string `json:"id"`
				Username   string `json:"username"`
				FullName   string `json:"full_name"`
				Biography  string `json:"biography"`
				EdgeFollow struct {
					Count int `json:"count"`
				} `json:"edge_follow"`
				EdgeFollowedBy struct {
					Count int `json:"count"`
				} `json:"edge_followed_by"`
				EdgeOwnerToTimelineMedia struct {
					Count int `json:"count"`
				} `json:"edge_owner_to_timeline_media"`
				IsPrivate             bool   `json:"is_private"`
				IsVerified            bool   `json:"is_verified"`
				IsBusinessAccount     bool   `json:"is_business_account"`
				IsProfessionalAccount bool   `json:"is_professional_account"`
				IsJoinedRecently      bool   `json:"is_joined_recently"`
				ProfilePicURL         string `json:"profile_pic_url"`
				ProfilePicURLHD       string `json:"profile_pic_url_hd"`
				ExternalURL           string `json:"external_url"`
				FBID                  string `json:"fbid"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode profile for %s: %w", username, err)
	}
	u := raw.Data.User
	return &UserProfile{
		ID:                    u.ID,
		Username:              u.Username,
		FullName:              u.FullName,
		Biography:             u.Biography,
		FollowersCount:        u.EdgeFollowedBy.Count,
		FolloweesCount:        u.EdgeFollow.Count,
		PostCount:             u.EdgeOwnerToTimelineMedia.Count,
		IsPrivate:             u.IsPrivate,
		IsVerified:            u.IsVerified,
		IsBusinessAccount:     u.IsBusinessAccount,
		IsProfessionalAccount: u.IsProfessionalAccount,
		HasJoinedRecently:     u.IsJoinedRecently,
		ProfilePicURL:         u.ProfilePicURL,
		ProfilePicURLHD:       u.ProfilePicURLHD,
		ExternalURL:           u.ExternalURL,
		FacebookID:            u.FBID,
	}, nil
}
