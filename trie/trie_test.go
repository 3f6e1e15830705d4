package trie

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestTrieZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	var table Table[string, int]
	table.Set("cat", 1)
	v, err := table.Get("cat")
	if err != nil || v != 1 {
		t.Logf("table = %s", table.String())
		t.Errorf("expected to get ⟨cat→1⟩ back, got (%v, %v)", v, err)
	}
}

func TestTrieCollisionSpawnsChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	table.Set("car", 2)
	if v, _ := table.Get("cat"); v != 1 {
		t.Errorf("expected ⟨cat⟩ to map to 1, got %v", v)
	}
	if v, _ := table.Get("car"); v != 2 {
		t.Errorf("expected ⟨car⟩ to map to 2, got %v", v)
	}
	// 'c' % 26 = 21, 'a' % 26 = 19, 't' % 26 = 12, 'r' % 26 = 10:
	// the shared prefix "ca" forces two child levels before 't'/'r' part ways
	loc, err := table.Location("cat")
	require.NoError(t, err)
	require.Equal(t, []int{21, 19, 12}, loc, "unexpected slot path for 'cat'")
	loc, err = table.Location("car")
	require.NoError(t, err)
	require.Equal(t, []int{21, 19, 10}, loc, "unexpected slot path for 'car'")
	if table.Len() != 2 {
		t.Logf("table = %s", table.String())
		t.Errorf("expected 2 pairs in trie, have %d", table.Len())
	}
}

func TestTrieCollapseOnDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	table.Set("car", 2)
	if err := table.Delete("cat"); err != nil {
		t.Fatalf("delete of 'cat' failed: %v", err)
	}
	if v, err := table.Get("car"); err != nil || v != 2 {
		t.Logf("table = %s", table.String())
		t.Error("expected 'car' to stay reachable after deleting 'cat'")
	}
	// the single-pair chain below slot 21 must have collapsed all the way
	// back to the slot depth 'cat' and 'car' occupied before colliding
	loc, err := table.Location("car")
	require.NoError(t, err)
	require.Equal(t, []int{21}, loc, "expected 'car' back at its pre-collision slot")
	if table.Len() != 1 {
		t.Errorf("expected 1 remaining pair, have %d", table.Len())
	}
}

func TestTriePrefixKeyAnchorsInSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	table.Set("car", 2)
	table.Set("ca", 3) // strict prefix of both, exhausted at level 2
	loc, err := table.Location("ca")
	require.NoError(t, err)
	require.Equal(t, []int{21, 19, DefaultWidth - 1}, loc,
		"expected 'ca' anchored in the sentinel slot at level 2")
	// deeper keys undisturbed
	if v, _ := table.Get("cat"); v != 1 {
		t.Error("expected 'cat' to survive the prefix insert")
	}
	if v, _ := table.Get("car"); v != 2 {
		t.Error("expected 'car' to survive the prefix insert")
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 pairs in trie, have %d", table.Len())
	}
}

func TestTrieDeletePrefixKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	table.Set("car", 2)
	table.Set("ca", 3)
	if err := table.Delete("ca"); err != nil {
		t.Fatalf("delete of 'ca' failed: %v", err)
	}
	// two pairs remain below the shared node, so no collapse yet
	loc, _ := table.Location("cat")
	require.Equal(t, []int{21, 19, 12}, loc, "expected 'cat' untouched by prefix delete")
	if err := table.Delete("car"); err != nil {
		t.Fatalf("delete of 'car' failed: %v", err)
	}
	loc, _ = table.Location("cat")
	require.Equal(t, []int{21}, loc, "expected 'cat' collapsed to the root slot")
	if table.Len() != 1 {
		t.Errorf("expected 1 remaining pair, have %d", table.Len())
	}
}

func TestTrieOverwrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	table.Set("car", 2)
	table.Set("car", 5) // overwrite through two child levels
	if table.Len() != 2 {
		t.Errorf("expected overwrite to keep length at 2, is %d", table.Len())
	}
	if v, _ := table.Get("car"); v != 5 {
		t.Errorf("expected overwritten value 5, got %v", v)
	}
}

func TestTrieNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	// 'cab' shares the slot of 'cat' at level 0, but only 'cat' is stored
	if _, err := table.Get("cab"); !errors.Is(err, keyed.ErrNotFound) {
		t.Errorf("expected ErrNotFound for positionally colliding key, got %v", err)
	}
	if err := table.Delete("cab"); !errors.Is(err, keyed.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting positionally colliding key, got %v", err)
	}
	if _, err := table.Location("dog"); !errors.Is(err, keyed.ErrNotFound) {
		t.Errorf("expected ErrNotFound locating absent key, got %v", err)
	}
	if table.Contains("cab") {
		t.Error("did not expect trie to contain 'cab'")
	}
}

func TestTrieWidthOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int](Width(5)) // characters spread over 4 slots
	table.Set("aa", 1)
	table.Set("ab", 2)
	table.Set("a", 3)
	loc, _ := table.Location("aa")
	require.Equal(t, []int{1, 1}, loc)
	loc, _ = table.Location("ab")
	require.Equal(t, []int{1, 2}, loc)
	loc, _ = table.Location("a")
	require.Equal(t, []int{1, 4}, loc, "expected 'a' in the sentinel slot of width 5")
}

func TestTrieLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	table.Set("cat", 1)
	if v := table.Lookup("cat").WithDefault(-1); v != 1 {
		t.Errorf("expected Lookup of present key to be just 1, is %d", v)
	}
	if v := table.Lookup("dog").WithDefault(-1); v != -1 {
		t.Errorf("expected Lookup of absent key to be nothing, is %d", v)
	}
}

// --- Reference-map equivalence ---------------------------------------------

func TestTrieAgainstReferenceMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed.trie")
	defer teardown()
	//
	table := New[string, int]()
	reference := make(map[string]int)
	rng := rand.New(rand.NewSource(3))
	for step := 0; step < 5000; step++ {
		key := randomKey(rng) // short keys over a tiny alphabet force deep collisions
		if rng.Intn(3) == 0 { // every 3rd step deletes
			err := table.Delete(key)
			if _, ok := reference[key]; ok {
				require.NoError(t, err, "delete of present key %q failed", key)
				delete(reference, key)
			} else {
				require.ErrorIs(t, err, keyed.ErrNotFound, "delete of absent key %q", key)
			}
			continue
		}
		table.Set(key, step)
		reference[key] = step
	}
	require.Equal(t, len(reference), table.Len(), "length diverged from reference map")
	for key, want := range reference {
		got, err := table.Get(key)
		require.NoError(t, err, "key %q lost", key)
		require.Equal(t, want, got, "value for %q diverged", key)
		_, err = table.Location(key)
		require.NoError(t, err, "key %q has no location", key)
	}
}

func randomKey(rng *rand.Rand) string {
	length := 1 + rng.Intn(4)
	key := make([]byte, length)
	for i := range key {
		key[i] = byte('a' + rng.Intn(4))
	}
	return string(key)
}
