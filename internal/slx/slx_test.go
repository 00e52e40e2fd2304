package slx

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		Value  int
		Lo, Hi int
		Want   int
	}{
		{Value: 500, Lo: 0, Hi: 300, Want: 300},
		{Value: -1, Lo: 0, Hi: 300, Want: 0},
		{Value: 150, Lo: 0, Hi: 300, Want: 150},
		{Value: 5, Lo: 10, Hi: 90, Want: 10},
	}
	for _, c := range tests {
		if got := Clamp(c.Value, c.Lo, c.Hi); got != c.Want {
			t.Errorf("clamp(%d, %d, %d): want %d - got %d", c.Value, c.Lo, c.Hi, c.Want, got)
		}
	}
}

func TestOverride(t *testing.T) {
	var (
		def = Ptr(10)
		got = Override(def, nil)
	)
	if got != def {
		t.Errorf("unset value should keep the default")
	}
	got = Override(def, Ptr(20))
	if *got != 20 || *def != 10 {
		t.Errorf("set value should replace the default without touching it")
	}
}
