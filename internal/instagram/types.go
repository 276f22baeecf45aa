package instagram

// UserProfile is an immutable snapshot of an account, fetched on demand
// and never cached across calls.
type UserProfile struct {
	ID                    string `json:"id"`
	Username              string `json:"username"`
	FullName              string `json:"full_name"`
	Biography             string `json:"biography"`
	FollowersCount        int    `json:"followers_count"`
	FolloweesCount        int    `json:"followees_count"`
	PostCount             int    `json:"post_count"`
	IsPrivate             bool   `json:"is_private"`
	IsVerified            bool   `json:"is_verified"`
	IsBusinessAccount     bool   `json:"is_business_account"`
	IsProfessionalAccount bool   `json:"is_professional_account"`
	HasJoinedRecently     bool   `json:"has_joined_recently"`
	ProfilePicURL         string `json:"profile_pic_url"`
	ProfilePicURLHD       string `json:"profile_pic_url_hd"`
	ExternalURL           string `json:"external_url"`
	FacebookID            string `json:"facebook_id"`
}

// EdgeNode is the minimal user record carried by one relationship edge.
type EdgeNode struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// TwoFactorChallenge is the pending second login step. At most one may be
// pending per client; a successful verification consumes it.
type TwoFactorChallenge struct {
	ID       string
	Username string
}

// State tracks where the client sits in the login state machine.
type State int

const (
	Unauthenticated State = iota
	AwaitingTwoFactor
	Authenticated
	// Unknown means a persisted session was restored but not yet verified
	// against the backend.
	Unknown
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AwaitingTwoFactor:
		return "awaiting_two_factor"
	case Authenticated:
		return "authenticated"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

type pageInfo struct {
	HasNextPage bool   `json:"has_next_page"`
	EndCursor   string `json:"end_cursor"`
}

type edgePage struct {
	Count    int      `json:"count"`
	PageInfo pageInfo `json:"page_info"`
	Edges    []struct {
		Node EdgeNode `json:"node"`
	} `json:"edges"`
}

type loginResponse struct {
	Authenticated     bool   `json:"authenticated"`
	User              bool   `json:"user"`
	Status            string `json:"status"`
	Message           string `json:"message"`
	TwoFactorRequired bool   `json:"two_factor_required"`
	TwoFactorInfo     struct {
		TwoFactorIdentifier string `json:"two_factor_identifier"`
		Username            string `json:"username"`
	} `json:"two_factor_info"`
}

type twoFactorResponse struct {
	Status    string `json:"status"`
	ErrorType string `json:"error_type"`
}
