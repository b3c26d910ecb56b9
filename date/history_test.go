package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[float64])
	d1, v1 := New(2025, 07, 02), 102.5
	d2, v2 := New(2025, 07, 01), 101.0

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// Appending again at an existing date overwrites.
	h.Append(d1, 103.0)
	if h.Len() != 2 {
		t.Errorf("Append at existing date changed Len() to %v want 2", h.Len())
	}
	if v, ok := h.Get(d1); !ok || v != 103.0 {
		t.Errorf("Get(d1) = %v, %v want 103.0, true", v, ok)
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History[float64])
	if _, v := h.Latest(); v != 0 {
		t.Errorf("empty history Latest() value = %v want 0", v)
	}

	h.Append(New(2025, 7, 2), 2).Append(New(2025, 7, 1), 1)

	if day, v := h.First(); day != New(2025, 7, 1) || v != 1 {
		t.Errorf("First() = %v, %v want 2025-07-01, 1", day, v)
	}
	if day, v := h.Latest(); day != New(2025, 7, 2) || v != 2 {
		t.Errorf("Latest() = %v, %v want 2025-07-02, 2", day, v)
	}
}
