package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/podium/internal/api"
)

func TestCache_ReplaceAndSnapshotClone(t *testing.T) {
	var c Cache[api.Nominee]

	before := time.Now()
	c.Replace([]api.Nominee{
		{ID: "n1", Round: "1", Categories: []api.Category{{Name: "c", Artists: []api.Artist{{Name: "a"}}}}},
		{ID: "n2", Round: "2"},
	})

	if !c.Loaded() {
		t.Fatalf("Loaded() = false after Replace")
	}
	if c.LastUpdated().Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", c.LastUpdated(), before)
	}

	snap := c.Snapshot()
	if len(snap) != 2 || snap[0].ID != "n1" {
		t.Fatalf("snapshot = %#v, want 2 items", snap)
	}

	// Returned snapshot should be independent of the stored one.
	snap[0].Round = "999"
	snap[0].Categories[0].Artists[0].Name = "changed"
	again := c.Snapshot()
	if again[0].Round != "1" || again[0].Categories[0].Artists[0].Name != "a" {
		t.Fatalf("Snapshot should deep-clone; got %#v", again[0])
	}

	found, ok := c.Find("n1")
	if !ok {
		t.Fatalf("Find(n1) not found")
	}
	found.Categories[0].Name = "changed"
	if again, _ := c.Find("n1"); again.Categories[0].Name != "c" {
		t.Fatalf("Find should return a copy")
	}
	if _, ok := c.Find("missing"); ok {
		t.Fatalf("Find(missing) ok, want false")
	}
}

func TestCache_FailKeepsPreviousData(t *testing.T) {
	var c Cache[api.Sponsor]
	c.Replace([]api.Sponsor{{ID: "s1"}})

	c.Fail(errors.New("boom"))
	if c.Len() != 1 {
		t.Fatalf("Len = %d after Fail, want 1", c.Len())
	}
	if c.LastError() == nil || c.LastError().Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", c.LastError())
	}

	c.Replace(nil)
	if c.LastError() != nil {
		t.Fatalf("LastError = %v after Replace, want nil", c.LastError())
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCache_UpsertAndRemove(t *testing.T) {
	var c Cache[api.AboutUsEntry]

	c.Upsert(api.AboutUsEntry{ID: "a1", Title: "one"})
	c.Upsert(api.AboutUsEntry{ID: "a2", Title: "two"})
	c.Upsert(api.AboutUsEntry{ID: "a1", Title: "uno"})

	snap := c.Snapshot()
	if len(snap) != 2 || snap[0].Title != "uno" || snap[1].Title != "two" {
		t.Fatalf("after upserts = %#v", snap)
	}

	if !c.Remove("a1") {
		t.Fatalf("Remove(a1) = false, want true")
	}
	if c.Remove("a1") {
		t.Fatalf("second Remove(a1) = true, want false")
	}
	if _, ok := c.Find("a1"); ok {
		t.Fatalf("a1 still cached after Remove")
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestStrategyString(t *testing.T) {
	if RefetchAfterWrite.String() != "refetch" || PatchLocally.String() != "patch" {
		t.Fatalf("unexpected strategy names %q %q", RefetchAfterWrite, PatchLocally)
	}
	if got := Strategy(9).String(); got != "strategy(9)" {
		t.Fatalf("Strategy(9).String() = %q", got)
	}
}
