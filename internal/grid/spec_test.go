package grid

import "testing"

func TestChildSpec(t *testing.T) {
	tests := []struct {
		name string
		cell Spec
		dim  Dimension
		want Spec
	}{
		{"exact fixed", ExactSpec(50), Fixed(20), ExactSpec(20)},
		{"exact match", ExactSpec(50), Match(), ExactSpec(50)},
		{"exact wrap", ExactSpec(50), Wrap(), AtMostSpec(50)},
		{"at most fixed", AtMostSpec(50), Fixed(70), ExactSpec(70)},
		{"at most match", AtMostSpec(50), Match(), AtMostSpec(50)},
		{"at most wrap", AtMostSpec(50), Wrap(), AtMostSpec(50)},
		{"unspecified fixed", Spec{Mode: Unspecified, Size: 50}, Fixed(5), ExactSpec(5)},
		{"unspecified match", Spec{Mode: Unspecified, Size: 50}, Match(), Spec{Mode: Unspecified, Size: 50}},
		{"unspecified wrap", Spec{Mode: Unspecified, Size: 50}, Wrap(), Spec{Mode: Unspecified, Size: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChildSpec(tt.cell, tt.dim); got != tt.want {
				t.Errorf("ChildSpec(%v, %v) = %v, want %v", tt.cell, tt.dim, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		spec       Spec
		childState State
		wantSize   int
		wantState  State
	}{
		{"exact ignores size", 30, ExactSpec(10), 0, 10, 0},
		{"at most fits", 8, AtMostSpec(10), 0, 8, 0},
		{"at most clamps", 12, AtMostSpec(10), 0, 10, WidthTooSmall},
		{"unspecified passes through", 99, UnspecifiedSpec(), 0, 99, 0},
		{"child state carried", 5, UnspecifiedSpec(), WidthTooSmall | HeightTooSmall, 5, WidthTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, state := Resolve(tt.size, tt.spec, tt.childState, WidthTooSmall)
			if size != tt.wantSize || state != tt.wantState {
				t.Errorf("Resolve() = (%d, %v), want (%d, %v)", size, state, tt.wantSize, tt.wantState)
			}
		})
	}
}

func TestSpecConstructorsClampNegative(t *testing.T) {
	if s := AtMostSpec(-4); s.Size != 0 {
		t.Errorf("AtMostSpec(-4).Size = %d, want 0", s.Size)
	}
	if b := UnspecifiedSpec().Bound(); b != 0 {
		t.Errorf("UnspecifiedSpec().Bound() = %d, want 0", b)
	}
	if s := ExactSpec(7).String(); s != "exact(7)" {
		t.Errorf("ExactSpec(7).String() = %q", s)
	}
}
