package index

import (
	"reflect"
	"testing"
)

func TestOrderedIDsInsertRemove(t *testing.T) {
	var o orderedIDs
	for _, id := range []int{5, 1, 3, 1, 2} {
		o.Insert(id)
	}
	want := []int{1, 2, 3, 5}
	if !reflect.DeepEqual(o.Slice(), want) {
		t.Fatalf("Slice() = %v, want %v", o.Slice(), want)
	}
	if o.Len() != 4 {
		t.Errorf("Len() = %d, want 4", o.Len())
	}

	o.Remove(3)
	want = []int{1, 2, 5}
	if !reflect.DeepEqual(o.Slice(), want) {
		t.Fatalf("Slice() after Remove(3) = %v, want %v", o.Slice(), want)
	}

	o.Remove(999) // no-op
	if o.Len() != 3 {
		t.Errorf("Len() after no-op remove = %d, want 3", o.Len())
	}

	if !o.Contains(1) || o.Contains(3) {
		t.Errorf("Contains() gave wrong answer after removal")
	}
}
