package arena

import "testing"

type closeRecorder struct {
	closed *[]string
	name   string
}

func (c *closeRecorder) Close() error {
	*c.closed = append(*c.closed, c.name)
	return nil
}

func TestArenaAllocReturnsZeroedDistinctSlices(t *testing.T) {
	a := New()
	defer a.Free()
	x := a.Alloc(4)
	y := a.Alloc(4)
	for _, b := range x {
		if b != 0 {
			t.Fatalf("expected zeroed allocation")
		}
	}
	x[0] = 1
	if y[0] == 1 {
		t.Fatalf("allocations must not alias")
	}
}

func TestArenaFreeReleasesTrackedInReverseOrder(t *testing.T) {
	a := New()
	var closed []string
	a.Track(&closeRecorder{closed: &closed, name: "first"})
	a.Track(&closeRecorder{closed: &closed, name: "second"})
	a.Free()
	if len(closed) != 2 || closed[0] != "second" || closed[1] != "first" {
		t.Fatalf("expected reverse-order close, got %v", closed)
	}
}

func TestArenaFreeIsIdempotent(t *testing.T) {
	a := New()
	var closed []string
	a.Track(&closeRecorder{closed: &closed, name: "only"})
	a.Free()
	a.Free()
	if len(closed) != 1 {
		t.Fatalf("expected Close to run exactly once, ran %d times", len(closed))
	}
}

func TestArenaAllocAfterFreePanics(t *testing.T) {
	a := New()
	a.Free()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on Alloc after Free")
		}
	}()
	a.Alloc(1)
}
