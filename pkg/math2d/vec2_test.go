package math2d

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		args []float64
		want Vec2
	}{
		{"no args", nil, Vec2{0, 0}},
		{"x only", []float64{3}, Vec2{3, 0}},
		{"x and y", []float64{3, 4}, Vec2{3, 4}},
		{"extra ignored", []float64{3, 4, 5}, Vec2{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Create(tt.args...)
			if *got != tt.want {
				t.Errorf("Create(%v) = %v, want %v", tt.args, *got, tt.want)
			}
		})
	}
}

func TestCopyCloneSet(t *testing.T) {
	v := V2(1.5, -2)
	out := Create()
	if got := Copy(out, &v); got != out || *out != v {
		t.Errorf("Copy = %v, want %v (same pointer)", *got, v)
	}
	if got := Copy(out, out); *got != v {
		t.Errorf("Copy onto itself = %v, want %v", *got, v)
	}

	c := Clone(&v)
	if c == &v || *c != v {
		t.Errorf("Clone = %v (%p), want fresh %v", *c, c, v)
	}
	c.X = 99
	if v.X != 1.5 {
		t.Error("clone was affected by modification")
	}

	if got := Set(out, 7, 8); got != out || *out != V2(7, 8) {
		t.Errorf("Set = %v, want (7, 8)", *got)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(out *Vec2) *Vec2
		want Vec2
	}{
		{"add", func(out *Vec2) *Vec2 { return Add(out, &Vec2{1, 2}, &Vec2{3, 4}) }, Vec2{4, 6}},
		{"sub", func(out *Vec2) *Vec2 { return Sub(out, &Vec2{5, 5}, &Vec2{2, 1}) }, Vec2{3, 4}},
		{"mul", func(out *Vec2) *Vec2 { return Mul(out, &Vec2{2, 3}, &Vec2{4, -1}) }, Vec2{8, -3}},
		{"div", func(out *Vec2) *Vec2 { return Div(out, &Vec2{8, 3}, &Vec2{2, -3}) }, Vec2{4, -1}},
		{"scale", func(out *Vec2) *Vec2 { return Scale(out, &Vec2{2, 3}, 2) }, Vec2{4, 6}},
		{"scale and add", func(out *Vec2) *Vec2 { return ScaleAndAdd(out, &Vec2{1, 1}, &Vec2{2, 3}, 2) }, Vec2{5, 7}},
		{"negate", func(out *Vec2) *Vec2 { return Negate(out, &Vec2{2, -3}) }, Vec2{-2, 3}},
		{"lerp mid", func(out *Vec2) *Vec2 { return Lerp(out, &Vec2{0, 0}, &Vec2{10, 10}, 0.5) }, Vec2{5, 5}},
		{"lerp extrapolate", func(out *Vec2) *Vec2 { return Lerp(out, &Vec2{0, 0}, &Vec2{10, 10}, 2) }, Vec2{20, 20}},
		{"lerp backwards", func(out *Vec2) *Vec2 { return Lerp(out, &Vec2{0, 0}, &Vec2{10, 10}, -1) }, Vec2{-10, -10}},
		{"min", func(out *Vec2) *Vec2 { return Min(out, &Vec2{1, 5}, &Vec2{3, 2}) }, Vec2{1, 2}},
		{"max", func(out *Vec2) *Vec2 { return Max(out, &Vec2{1, 5}, &Vec2{3, 2}) }, Vec2{3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &Vec2{}
			got := tt.fn(out)
			if got != out {
				t.Errorf("%s did not return its out argument", tt.name)
			}
			if *got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, *got, tt.want)
			}
		})
	}
}

func TestDivByZero(t *testing.T) {
	out := Div(&Vec2{}, &Vec2{1, -1}, &Vec2{0, 0})
	if !math.IsInf(out.X, 1) || !math.IsInf(out.Y, -1) {
		t.Errorf("Div by zero = %v, want (+Inf, -Inf)", *out)
	}
	out = Div(out, &Vec2{0, 0}, &Vec2{0, 0})
	if !math.IsNaN(out.X) || !math.IsNaN(out.Y) {
		t.Errorf("Div 0/0 = %v, want (NaN, NaN)", *out)
	}
}

func TestAliasing(t *testing.T) {
	a, b := V2(1, 2), V2(3, 5)
	ops := []struct {
		name string
		fn   func(out, v1, v2 *Vec2) *Vec2
	}{
		{"add", Add},
		{"sub", Sub},
		{"mul", Mul},
		{"div", Div},
		{"min", Min},
		{"max", Max},
		{"scale and add", func(out, v1, v2 *Vec2) *Vec2 { return ScaleAndAdd(out, v1, v2, 3) }},
		{"lerp", func(out, v1, v2 *Vec2) *Vec2 { return Lerp(out, v1, v2, 0.25) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			var want Vec2
			op.fn(&want, &a, &b)

			first := a
			op.fn(&first, &first, &b)
			if first != want {
				t.Errorf("out aliasing v1 = %v, want %v", first, want)
			}

			second := b
			op.fn(&second, &a, &second)
			if second != want {
				t.Errorf("out aliasing v2 = %v, want %v", second, want)
			}

			both := a
			var self Vec2
			op.fn(&self, &a, &a)
			op.fn(&both, &both, &both)
			if both != self {
				t.Errorf("out aliasing both = %v, want %v", both, self)
			}
		})
	}

	v := V2(3, 4)
	Normalize(&v, &v)
	if v != V2(0.6, 0.8) {
		t.Errorf("Normalize in place = %v, want (0.6, 0.8)", v)
	}
	m := Matrix{0, 1, -1, 0, 10, 20}
	p := V2(1, 2)
	ApplyTransform(&p, &p, &m)
	if p != V2(8, 21) {
		t.Errorf("ApplyTransform in place = %v, want (8, 21)", p)
	}
}

func TestScalarMetrics(t *testing.T) {
	if got := Dot(&Vec2{1, 0}, &Vec2{0, 1}); got != 0 {
		t.Errorf("Dot((1,0), (0,1)) = %v, want 0", got)
	}
	if got := Distance(&Vec2{0, 0}, &Vec2{3, 4}); got != 5 {
		t.Errorf("Distance((0,0), (3,4)) = %v, want 5", got)
	}
	if got := DistanceSquare(&Vec2{0, 0}, &Vec2{3, 4}); got != 25 {
		t.Errorf("DistanceSquare((0,0), (3,4)) = %v, want 25", got)
	}
	v := V2(3, 4)
	if Len(&v) != 5 || Length(&v) != 5 {
		t.Errorf("Len(%v) = %v, Length = %v, want 5", v, Len(&v), Length(&v))
	}
	if LenSquare(&v) != 25 || LengthSquare(&v) != 25 {
		t.Errorf("LenSquare(%v) = %v, LengthSquare = %v, want 25", v, LenSquare(&v), LengthSquare(&v))
	}
	a, b := V2(-1, 7), V2(2, 3)
	if Dist(&a, &b) != Distance(&a, &b) || DistSquare(&a, &b) != DistanceSquare(&a, &b) {
		t.Error("Dist/DistSquare disagree with Distance/DistanceSquare")
	}
}

func TestNormalize(t *testing.T) {
	out := Normalize(&Vec2{1, 1}, &Vec2{0, 0})
	if *out != (Vec2{0, 0}) || math.IsNaN(out.X) || math.IsNaN(out.Y) {
		t.Errorf("Normalize(0, 0) = %v, want exactly (0, 0)", *out)
	}
	out = Normalize(out, &Vec2{0, -2})
	if *out != (Vec2{0, -1}) {
		t.Errorf("Normalize(0, -2) = %v, want (0, -1)", *out)
	}
	out = Normalize(out, &Vec2{-7.5, 13})
	assert.InDelta(t, 1, Len(out), eps)
}

func TestProperties(t *testing.T) {
	samples := []Vec2{
		{0, 0}, {1, 2}, {-3.25, 4.5}, {1e-3, -1e3}, {123.456, 789.012}, {-0.1, -0.2},
	}
	scalars := []float64{2, -0.5, 3.75, 1e-2, -1e3}
	for _, v1 := range samples {
		out := Copy(&Vec2{}, &v1)
		if *out != v1 {
			t.Errorf("Copy(%v) = %v", v1, *out)
		}
		assert.Equal(t, LenSquare(&v1), Dot(&v1, &v1), "dot(v, v) == lenSquare(v) for %v", v1)
		assert.Equal(t, math.Sqrt(LenSquare(&v1)), Len(&v1), "len == sqrt(lenSquare) for %v", v1)

		for _, v2 := range samples {
			var sum, back Vec2
			Sub(&back, Add(&sum, &v1, &v2), &v2)
			assert.InDelta(t, v1.X, back.X, 1e-9, "add/sub x for %v, %v", v1, v2)
			assert.InDelta(t, v1.Y, back.Y, 1e-9, "add/sub y for %v, %v", v1, v2)
		}
		for _, s := range scalars {
			var scaled, back Vec2
			Scale(&back, Scale(&scaled, &v1, s), 1/s)
			assert.InDelta(t, v1.X, back.X, 1e-9, "scale x for %v by %v", v1, s)
			assert.InDelta(t, v1.Y, back.Y, 1e-9, "scale y for %v by %v", v1, s)
		}
	}
}

func TestApplyTransform(t *testing.T) {
	id := Identity()
	for _, v := range []Vec2{{0, 0}, {1, 2}, {-3.5, 9}} {
		out := ApplyTransform(&Vec2{}, &v, &id)
		if *out != v {
			t.Errorf("identity transform of %v = %v", v, *out)
		}
	}
	m := Matrix{2, 0, 0, 3, 10, 20}
	out := ApplyTransform(&Vec2{}, &Vec2{1, 1}, &m)
	if *out != V2(12, 23) {
		t.Errorf("ApplyTransform = %v, want (12, 23)", *out)
	}
}

func TestValueMethods(t *testing.T) {
	a, b := V2(1, 2), V2(3, 4)
	if got := a.Add(b); got != V2(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != V2(2, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != V2(3, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(V2(2, 4)); got != V2(1.5, 1) {
		t.Errorf("Div = %v", got)
	}
	if got := a.ScaleAndAdd(b, 2); got != V2(7, 10) {
		t.Errorf("ScaleAndAdd = %v", got)
	}
	if got := a.Min(V2(0, 5)); got != V2(0, 2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(V2(0, 5)); got != V2(1, 5) {
		t.Errorf("Max = %v", got)
	}
	if got := b.Normalize(); got != V2(0.6, 0.8) {
		t.Errorf("Normalize = %v", got)
	}
	if got := Zero2().Normalize(); got != Zero2() {
		t.Errorf("Normalize zero = %v", got)
	}
	if a != V2(1, 2) || b != V2(3, 4) {
		t.Errorf("value methods mutated receivers: %v %v", a, b)
	}
	if got := a.Perpendicular(); got != V2(-2, 1) {
		t.Errorf("Perpendicular = %v", got)
	}
	if got := V2(0, 1).Angle(); got != math.Pi/2 {
		t.Errorf("Angle = %v", got)
	}
	r := V2(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, 1, r.Y, eps)
	if got := V2(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String = %q", got)
	}
}

func TestConcurrentDistinctOutputs(t *testing.T) {
	const workers = 8
	results := make([]Vec2, workers)
	m := Translation(1, 1)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := V2(float64(i), float64(i))
			out := &results[i]
			for range 1000 {
				ApplyTransform(out, &v, &m)
			}
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		want := V2(float64(i+1), float64(i+1))
		if got != want {
			t.Errorf("worker %d = %v, want %v", i, got, want)
		}
	}
}
