package instagram

// Fixed query identifiers for the two relationship edges. The backend
// keys followers under edge_followed_by and followees under edge_follow.
const (
	followersQueryID = "17851374694183129"
	followeesQueryID = "17874545323001329"

	followersEdgeKey = "edge_followed_by"
	followeesEdgeKey = "edge_follow"
)

// Followers streams the accounts following userID. A positive max yields
// exactly max nodes; zero means unbounded.
func (c *Client) Followers(userID string, max int) *NodeIterator {
	limit := 0
	if max > 0 {
		limit = max
	}
	return c.queryNodes(followersQueryID, userID, followersEdgeKey, limit)
}

// Followees streams the accounts userID follows. A positive max yields
// max+1 nodes, one more than Followers with the same max; the off-by-one
// matches the long-observed behavior and is pinned by tests.
func (c *Client) Followees(userID string, max int) *NodeIterator {
	limit := 0
	if max > 0 {
		limit = max + 1
	}
	return c.queryNodes(followeesQueryID, userID, followeesEdgeKey, limit)
}
