package diff

import (
	"testing"

	"userscraper/internal/instagram"
)

func setOf(usernames ...string) *Set {
	s := NewSet()
	for i, u := range usernames {
		s.Add(instagram.EdgeNode{ID: string(rune('a' + i)), Username: u})
	}
	return s
}

func usernames(nodes []instagram.EdgeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Username
	}
	return out
}

func TestNotFollowingBack(t *testing.T) {
	followers := setOf("bob", "carol")
	followees := setOf("alice", "bob", "dave")

	got := usernames(NotFollowingBack(followers, followees))
	want := []string{"alice", "dave"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v (followee order must be preserved)", got, want)
		}
	}
}

func TestNotFollowingBackSelfIsEmpty(t *testing.T) {
	f := setOf("alice", "bob", "carol")
	if got := NotFollowingBack(f, f); len(got) != 0 {
		t.Fatalf("diff(F, F) = %v, want empty", usernames(got))
	}
}

func TestEqualityIsByUsernameOnly(t *testing.T) {
	followers := NewSet()
	followers.Add(instagram.EdgeNode{ID: "1", Username: "alice", FullName: "Alice A"})
	followees := NewSet()
	followees.Add(instagram.EdgeNode{ID: "9999", Username: "alice", FullName: "completely different"})

	if got := NotFollowingBack(followers, followees); len(got) != 0 {
		t.Fatalf("auxiliary fields leaked into equality: %v", usernames(got))
	}
}

func TestNotFollowingBackOrderIndependentInputs(t *testing.T) {
	followees := setOf("alice", "bob", "carol", "dave")

	a := NotFollowingBack(setOf("bob", "dave"), followees)
	b := NotFollowingBack(setOf("dave", "bob"), followees)
	if len(a) != len(b) {
		t.Fatalf("follower insertion order changed the result: %v vs %v", usernames(a), usernames(b))
	}
	for i := range a {
		if a[i].Username != b[i].Username {
			t.Fatalf("follower insertion order changed the result: %v vs %v", usernames(a), usernames(b))
		}
	}
}

func TestSetDeduplicatesByUsername(t *testing.T) {
	s := NewSet()
	s.Add(instagram.EdgeNode{ID: "1", Username: "alice"})
	s.Add(instagram.EdgeNode{ID: "2", Username: "alice"})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if s.Nodes()[0].ID != "1" {
		t.Errorf("first add should win, got %+v", s.Nodes()[0])
	}
}
