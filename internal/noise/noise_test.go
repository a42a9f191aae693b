package noise

import "testing"

func TestFieldDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		if a.At1(x) != b.At1(x) {
			t.Fatalf("At1(%v) differs between fields with the same seed", x)
		}
		if a.At2(x, -x) != b.At2(x, -x) {
			t.Fatalf("At2(%v) differs between fields with the same seed", x)
		}
		if a.At3(x, 1, x) != b.At3(x, 1, x) {
			t.Fatalf("At3(%v) differs between fields with the same seed", x)
		}
	}
}

func TestFieldDefaultRange(t *testing.T) {
	f := New(1)
	for i := -200; i < 200; i++ {
		x := float64(i) * 0.13
		if v := f.At2(x, x*0.5); v < 0 || v >= 1 {
			t.Fatalf("At2(%v) = %v, want [0, 1)", x, v)
		}
	}
}

func TestDetailZeroOctaves(t *testing.T) {
	f := New(3)
	f.Detail(0, 0.5)
	if v := f.At1(1.5); v != 0 {
		t.Errorf("At1 with 0 octaves = %v, want 0", v)
	}
}

func TestDetailSingleOctaveBound(t *testing.T) {
	f := New(3)
	f.Detail(1, 0.5)
	for i := 0; i < 100; i++ {
		if v := f.At1(float64(i) * 0.1); v < 0 || v >= 0.5 {
			t.Fatalf("single octave sample = %v, want [0, 0.5)", v)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 20; i++ {
		x := float64(i)*0.71 + 0.3
		if a.At2(x, x) == b.At2(x, x) {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical samples")
	}
	if a.Seed() != 1 {
		t.Errorf("Seed() = %d, want 1", a.Seed())
	}
}
