package fixed

import "testing"

func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want Fixed }{
		{FromInt(1), FromInt(1), FromInt(2)},
		{FromInt(2), FromInt(2), FromInt(4)},
		{FromInt(2), FromInt(-2), FromInt(0)},
		{FromInt(2), FromInt(-4), FromInt(-2)},
		{FromFloat32(1.5), FromFloat32(1.5), FromInt(3)},
		{FromFloat32(3.5), FromFloat32(-1.25), FromFloat32(2.25)},
	}
	for _, c := range cases {
		if got := c.a.Add(c.b); got != c.want {
			t.Errorf("%v + %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSub(t *testing.T) {
	cases := []struct{ a, b, want Fixed }{
		{FromInt(1), FromInt(1), FromInt(0)},
		{FromInt(3), FromInt(2), FromInt(1)},
		{FromInt(2), FromInt(-2), FromInt(4)},
		{FromInt(2), FromInt(4), FromInt(-2)},
		{FromFloat32(1.5), FromFloat32(1.5), FromInt(0)},
		{FromFloat32(3.5), FromFloat32(1.25), FromFloat32(2.25)},
	}
	for _, c := range cases {
		if got := c.a.Sub(c.b); got != c.want {
			t.Errorf("%v - %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct{ a, b, want Fixed }{
		{FromInt(2), FromInt(2), FromInt(4)},
		{FromInt(3), FromInt(-2), FromInt(-6)},
		{FromInt(4), FromFloat32(0.5), FromInt(2)},
		{FromInt(-16), FromInt(-16), FromInt(256)},
		{FromInt(37), FromInt(3), FromInt(111)},
		{FromInt(128), FromInt(128), FromInt(16384)},
	}
	for _, c := range cases {
		if got := c.a.Mul(c.b); got != c.want {
			t.Errorf("%v * %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestDiv(t *testing.T) {
	cases := []struct{ a, b, want Fixed }{
		{FromInt(4), FromInt(2), FromInt(2)},
		{FromInt(-6), FromInt(2), FromInt(-3)},
		{FromInt(2), FromFloat32(0.5), FromInt(4)},
		{FromInt(256), FromInt(-16), FromInt(-16)},
		{FromInt(111), FromInt(3), FromInt(37)},
		{FromInt(37), FromInt(3), FromFloat32(12.33333)},
		{FromInt(16384), FromInt(128), FromInt(128)},
	}
	for _, c := range cases {
		if got := c.a.Div(c.b); got != c.want {
			t.Errorf("%v / %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestShl(t *testing.T) {
	cases := []struct {
		a    Fixed
		n    uint
		want Fixed
	}{
		{FromInt(0), 2, FromInt(0)},
		{FromInt(1), 1, FromInt(2)},
		{FromFloat32(0.5), 1, FromInt(1)},
		{FromFloat32(0.25), 2, FromInt(1)},
		{FromFloat32(0.125), 3, FromInt(1)},
	}
	for _, c := range cases {
		if got := c.a.Shl(c.n); got != c.want {
			t.Errorf("%v << %d = %v, want %v", c.a, c.n, got, c.want)
		}
	}
}

func TestShr(t *testing.T) {
	cases := []struct {
		a    Fixed
		n    uint
		want Fixed
	}{
		{FromInt(0), 2, FromInt(0)},
		{FromInt(1), 1, FromFloat32(0.5)},
		{FromInt(2), 1, FromInt(1)},
		{FromInt(4), 2, FromInt(1)},
		{FromInt(8), 3, FromInt(1)},
	}
	for _, c := range cases {
		if got := c.a.Shr(c.n); got != c.want {
			t.Errorf("%v >> %d = %v, want %v", c.a, c.n, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(1), FromInt(1)},
		{FromInt(500), FromInt(500)},
		{FromInt(-500), FromInt(500)},
		{FromFloat32(-1.5), FromFloat32(1.5)},
		{FromFloat32(-2.5), FromFloat32(2.5)},
	}
	for _, c := range cases {
		if got := c.a.Abs(); got != c.want {
			t.Errorf("abs(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestFloor(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(1), FromInt(1)},
		{FromInt(500), FromInt(500)},
		{FromFloat32(1.5), FromInt(1)},
		{FromFloat32(1.99999), FromInt(1)},
		{FromFloat32(-0.0001), FromInt(-1)},
		{FromFloat32(-2.5), FromInt(-3)},
	}
	for _, c := range cases {
		if got := c.a.Floor(); got != c.want {
			t.Errorf("floor(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestCeil(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(1), FromInt(1)},
		{FromInt(500), FromInt(500)},
		{FromFloat32(1.5), FromInt(2)},
		{FromFloat32(1.99999), FromInt(2)},
		{FromFloat32(-0.0001), FromInt(0)},
		{FromFloat32(-2.5), FromInt(-2)},
	}
	for _, c := range cases {
		if got := c.a.Ceil(); got != c.want {
			t.Errorf("ceil(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(1), FromInt(1)},
		{FromInt(500), FromInt(500)},
		{FromFloat32(1.5), FromInt(2)},
		{FromFloat32(1.49999), FromInt(1)},
		{FromFloat32(1.99999), FromInt(2)},
		{FromFloat32(-0.0001), FromInt(0)},
		{FromFloat32(-2.5), FromInt(-2)},
		{FromFloat32(-2.9), FromInt(-3)},
	}
	for _, c := range cases {
		if got := c.a.Round(); got != c.want {
			t.Errorf("round(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestTrunc(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(1), FromInt(1)},
		{FromInt(500), FromInt(500)},
		{FromFloat32(1.5), FromInt(1)},
		{FromFloat32(1.49999), FromInt(1)},
		{FromFloat32(1.99999), FromInt(1)},
		{FromFloat32(-0.0001), FromInt(0)},
		{FromFloat32(-2.5), FromInt(-2)},
		{FromFloat32(-2.9), FromInt(-2)},
	}
	for _, c := range cases {
		if got := c.a.Trunc(); got != c.want {
			t.Errorf("trunc(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestFract(t *testing.T) {
	cases := []struct{ a, want Fixed }{
		{FromInt(0), FromInt(0)},
		{FromFloat32(0.1), FromFloat32(0.1)},
		{FromFloat32(0.9), FromFloat32(0.9)},
		{FromFloat32(1.5), FromFloat32(0.5)},
		{FromFloat32(-2.5), FromFloat32(0.5)},
	}
	for _, c := range cases {
		if got := c.a.Fract(); got != c.want {
			t.Errorf("fract(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestAvg(t *testing.T) {
	cases := []struct{ a, b, want Fixed }{
		{FromInt(1), FromInt(2), FromFloat32(1.5)},
		{FromInt(1), FromInt(1), FromInt(1)},
		{FromInt(5), FromInt(-5), FromInt(0)},
		{FromInt(3), FromInt(37), FromInt(20)},
		{FromInt(3), FromFloat32(1.5), FromFloat32(2.25)},
	}
	for _, c := range cases {
		if got := c.a.Avg(c.b); got != c.want {
			t.Errorf("avg(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := FromInt(37).Int(); got != 37 {
		t.Errorf("FromInt(37).Int() = %d, want 37", got)
	}
	if got := FromFloat32(2.5).Float32(); got != 2.5 {
		t.Errorf("FromFloat32(2.5).Float32() = %v, want 2.5", got)
	}
	if got := FromFloat32(2.5).Int(); got != 2 {
		t.Errorf("FromFloat32(2.5).Int() = %d, want 2", got)
	}
}

func TestOrdering(t *testing.T) {
	if !(FromInt(37) > FromInt(3)) {
		t.Error("37 should be > 3")
	}
	if !(FromInt(3) < FromInt(37)) {
		t.Error("3 should be < 37")
	}
	if !(FromInt(-4) < FromInt(4)) {
		t.Error("-4 should be < 4")
	}
}
