package geom

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		v    Vec
		want string
	}{
		{New(1, 2, 3), "1\t2\t3"},
		{New(1.5, 0, -2.25), "1.5\t0\t-2.25"},
		{New(0.1, 1e21, -1e-7), "0.1\t1e+21\t-1e-07"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
