package instagram

import "errors"

var (
	// ErrAuthentication covers every login rejection: wrong password,
	// unknown username, or a backend message.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNoChallengePending is returned by VerifyTwoFactor when no
	// two-factor challenge is awaiting a code.
	ErrNoChallengePending = errors.New("no two-factor challenge pending")

	// ErrCorruptSession means a restored session blob lacks the csrftoken
	// cookie the client needs to sign requests.
	ErrCorruptSession = errors.New("corrupt session: csrftoken cookie missing")

	// ErrUserNotFound is returned by Profile on a 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied means a relationship query returned an empty first
	// page, which the backend only does when the caller lacks visibility
	// into the target account.
	ErrAccessDenied = errors.New("access to this information is denied")

	// ErrDone terminates a node iteration.
	ErrDone = errors.New("no more nodes")
)
