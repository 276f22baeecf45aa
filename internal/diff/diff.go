// Package diff computes the not-following-back set over materialized
// relationship streams.
package diff

import (
	"context"
	"errors"

	"userscraper/internal/instagram"
)

// Set is an insertion-ordered collection of edge nodes keyed by username.
// Two nodes with the same username are the same account; later adds with
// a seen username are ignored.
type Set struct {
	order []string
	nodes map[string]instagram.EdgeNode
}

func NewSet() *Set {
	return &Set{nodes: make(map[string]instagram.EdgeNode)}
}

func (s *Set) Add(n instagram.EdgeNode) {
	if _, ok := s.nodes[n.Username]; ok {
		return
	}
	s.nodes[n.Username] = n
	s.order = append(s.order, n.Username)
}

func (s *Set) Has(username string) bool {
	_, ok := s.nodes[username]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// Nodes returns the nodes in insertion order.
func (s *Set) Nodes() []instagram.EdgeNode {
	out := make([]instagram.EdgeNode, 0, len(s.order))
	for _, username := range s.order {
		out = append(out, s.nodes[username])
	}
	return out
}

// Collect drains a node iterator into a Set.
func Collect(ctx context.Context, it *instagram.NodeIterator) (*Set, error) {
	s := NewSet()
	for {
		node, err := it.Next(ctx)
		if errors.Is(err, instagram.ErrDone) {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
		s.Add(node)
	}
}

// NotFollowingBack returns the followees whose username is absent from
// followers, in followee enumeration order. Equality is by username only.
func NotFollowingBack(followers, followees *Set) []instagram.EdgeNode {
	var out []instagram.EdgeNode
	for _, n := range followees.Nodes() {
		if !followers.Has(n.Username) {
			out = append(out, n)
		}
	}
	return out
}
