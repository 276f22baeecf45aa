package redis_store

import "testing"

func TestSessionKeyFormat(t *testing.T) {
	if got := key("alice"); got != "userscraper:session:alice" {
		t.Errorf("key = %q, want userscraper:session:alice", got)
	}
}
