package ratetracker

import "testing"

func TestTrackerCountsEmptyRequests(t *testing.T) {
	results := map[string][]int{
		"cat": {1, 2},
		"dog": {},
		"owl": {},
	}
	tr := New(1440, func(q string) []int { return results[q] })

	tr.AddFindRequest("cat")
	tr.AddFindRequest("dog")
	tr.AddFindRequest("owl")

	if got := tr.GetNoResultRequests(); got != 2 {
		t.Errorf("GetNoResultRequests() = %d, want 2", got)
	}
}

func TestTrackerEvictsOldestBeyondCapacity(t *testing.T) {
	empty := true
	tr := New(3, func(string) []int {
		if empty {
			return nil
		}
		return []int{1}
	})

	tr.AddFindRequest("q1") // empty
	tr.AddFindRequest("q2") // empty
	tr.AddFindRequest("q3") // empty
	if got := tr.GetNoResultRequests(); got != 3 {
		t.Fatalf("GetNoResultRequests() = %d, want 3", got)
	}

	empty = false
	tr.AddFindRequest("q4") // non-empty, evicts q1 (empty) from the window
	if got := tr.GetNoResultRequests(); got != 2 {
		t.Errorf("GetNoResultRequests() = %d, want 2 after eviction", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := New(10, func(string) []int { return nil })
	tr.AddFindRequest("q1")
	tr.AddFindRequest("q2")
	if tr.GetNoResultRequests() != 2 {
		t.Fatalf("expected 2 before reset")
	}
	tr.Reset()
	if tr.GetNoResultRequests() != 0 {
		t.Errorf("GetNoResultRequests() after Reset() = %d, want 0", tr.GetNoResultRequests())
	}
}

func TestTrackerDefaultCapacity(t *testing.T) {
	tr := New(0, func(string) []int { return nil })
	if tr.capacity != Window {
		t.Errorf("capacity = %d, want %d", tr.capacity, Window)
	}
}
