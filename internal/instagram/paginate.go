package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const pageSize = 50

// NodeIterator streams the nodes of one relationship edge behind a
// cursor-paginated GraphQL query. It is pull-based: a page is fetched only
// when Next runs out of buffered nodes, and the yield limit is checked
// before fetching, so a bounded consumer never pays for one page past its
// stop point. Iteration is not restartable; build a new iterator instead.
type NodeIterator struct {
	c       *Client
	queryID string
	edgeKey string
	userID  string

	limit   int // 0 = unbounded
	yielded int

	buf       []EdgeNode
	pos       int
	cursor    string
	hasNext   bool
	fetched   bool
	exhausted bool
}

func (c *Client) queryNodes(queryID, userID, edgeKey string, limit int) *NodeIterator {
	return &NodeIterator{
		c:       c,
		queryID: queryID,
		edgeKey: edgeKey,
		userID:  userID,
		limit:   limit,
	}
}

// Next returns the next node in backend order, or ErrDone once the stream
// ends. An empty first page fails with ErrAccessDenied before any further
// request is issued.
func (it *NodeIterator) Next(ctx context.Context) (EdgeNode, error) {
	if it.limit > 0 && it.yielded >= it.limit {
		return EdgeNode{}, ErrDone
	}
	for it.pos >= len(it.buf) {
		if it.exhausted {
			return EdgeNode{}, ErrDone
		}
		if err := it.fetch(ctx); err != nil {
			return EdgeNode{}, err
		}
	}
	node := it.buf[it.pos]
	it.pos++
	it.yielded++
	return node, nil
}

func (it *NodeIterator) fetch(ctx context.Context) error {
	vars := map[string]any{
		"id":    it.userID,
		"first": pageSize,
	}
	if it.cursor != "" {
		vars["after"] = it.cursor
	}
	varsJSON, err := json.Marshal(vars)
	if err != nil {
		return fmt.Errorf("encode query variables: %w", err)
	}
	params := url.Values{}
	params.Set("query_id", it.queryID)
	params.Set("variables", string(varsJSON))

	body, _, err := it.c.sess.Get(ctx, it.c.baseURL+"/graphql/query/?"+params.Encode())
	if err != nil {
		return err
	}
	var raw struct {
		Data struct {
			User map[string]json.RawMessage `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("decode %s page: %w", it.edgeKey, err)
	}
	var page edgePage
	if err := json.Unmarshal(raw.Data.User[it.edgeKey], &page); err != nil {
		return fmt.Errorf("decode %s edge: %w", it.edgeKey, err)
	}
	it.c.metrics.Page(it.edgeKey)

	if !it.fetched && len(page.Edges) == 0 {
		// a reachable account always has a non-empty first page; an empty
		// one means the caller lacks visibility
		return ErrAccessDenied
	}
	it.fetched = true
	it.buf = it.buf[:0]
	for _, e := range page.Edges {
		it.buf = append(it.buf, e.Node)
	}
	it.pos = 0
	it.hasNext = page.PageInfo.HasNextPage
	it.cursor = page.PageInfo.EndCursor
	if !it.hasNext {
		it.exhausted = true
	}
	return nil
}
