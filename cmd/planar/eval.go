package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/taigrr/planar/pkg/math2d"
)

var errUnknownOp = errors.New("unknown operation")

// evalOp describes one eval operation: how many vector operands it takes,
// whether a trailing scalar follows, and how to compute the result.
type evalOp struct {
	vecs   int
	scalar bool
	run    func(v []math2d.Vec2, s float64, m *math2d.Matrix) string
}

func vecResult(fn func(out, v1, v2 *math2d.Vec2) *math2d.Vec2) evalOp {
	return evalOp{vecs: 2, run: func(v []math2d.Vec2, _ float64, _ *math2d.Matrix) string {
		return fn(&math2d.Vec2{}, &v[0], &v[1]).String()
	}}
}

func scalarResult(vecs int, fn func(v []math2d.Vec2) float64) evalOp {
	return evalOp{vecs: vecs, run: func(v []math2d.Vec2, _ float64, _ *math2d.Matrix) string {
		return strconv.FormatFloat(fn(v), 'g', -1, 64)
	}}
}

var evalOps = map[string]evalOp{
	"add": vecResult(math2d.Add),
	"sub": vecResult(math2d.Sub),
	"mul": vecResult(math2d.Mul),
	"div": vecResult(math2d.Div),
	"min": vecResult(math2d.Min),
	"max": vecResult(math2d.Max),
	"scale": {vecs: 1, scalar: true, run: func(v []math2d.Vec2, s float64, _ *math2d.Matrix) string {
		return math2d.Scale(&v[0], &v[0], s).String()
	}},
	"scaleandadd": {vecs: 2, scalar: true, run: func(v []math2d.Vec2, s float64, _ *math2d.Matrix) string {
		return math2d.ScaleAndAdd(&v[0], &v[0], &v[1], s).String()
	}},
	"lerp": {vecs: 2, scalar: true, run: func(v []math2d.Vec2, s float64, _ *math2d.Matrix) string {
		return math2d.Lerp(&v[0], &v[0], &v[1], s).String()
	}},
	"negate": {vecs: 1, run: func(v []math2d.Vec2, _ float64, _ *math2d.Matrix) string {
		return math2d.Negate(&v[0], &v[0]).String()
	}},
	"normalize": {vecs: 1, run: func(v []math2d.Vec2, _ float64, _ *math2d.Matrix) string {
		return math2d.Normalize(&v[0], &v[0]).String()
	}},
	"apply": {vecs: 1, run: func(v []math2d.Vec2, _ float64, m *math2d.Matrix) string {
		return math2d.ApplyTransform(&v[0], &v[0], m).String()
	}},
	"dot":            scalarResult(2, func(v []math2d.Vec2) float64 { return math2d.Dot(&v[0], &v[1]) }),
	"distance":       scalarResult(2, func(v []math2d.Vec2) float64 { return math2d.Distance(&v[0], &v[1]) }),
	"distancesquare": scalarResult(2, func(v []math2d.Vec2) float64 { return math2d.DistanceSquare(&v[0], &v[1]) }),
	"len":            scalarResult(1, func(v []math2d.Vec2) float64 { return math2d.Len(&v[0]) }),
	"lensquare":      scalarResult(1, func(v []math2d.Vec2) float64 { return math2d.LenSquare(&v[0]) }),
}

// evaluate runs op over args and returns the formatted result.
func evaluate(op string, args []string, m *math2d.Matrix) (string, error) {
	desc, ok := evalOps[strings.ToLower(op)]
	if !ok {
		return "", fmt.Errorf("%w %q (one of %s)", errUnknownOp, op, strings.Join(opNames(), ", "))
	}
	want := desc.vecs
	if desc.scalar {
		want++
	}
	if len(args) != want {
		return "", fmt.Errorf("%s takes %d arguments, got %d", op, want, len(args))
	}

	vecs := make([]math2d.Vec2, desc.vecs)
	for i := range vecs {
		v, err := parseVec(args[i])
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i+1, err)
		}
		vecs[i] = v
	}
	var s float64
	if desc.scalar {
		var err error
		if s, err = strconv.ParseFloat(args[desc.vecs], 64); err != nil {
			return "", fmt.Errorf("argument %d: invalid scalar: %w", desc.vecs+1, err)
		}
	}
	return desc.run(vecs, s, m), nil
}

func opNames() []string {
	names := make([]string, 0, len(evalOps))
	for name := range evalOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseVec parses "x,y".
func parseVec(s string) (math2d.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math2d.Vec2{}, fmt.Errorf("invalid vector %q (need x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return math2d.Vec2{}, fmt.Errorf("invalid x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return math2d.Vec2{}, fmt.Errorf("invalid y coordinate: %w", err)
	}
	return math2d.V2(x, y), nil
}

// parseMatrix parses "a,b,c,d,tx,ty".
func parseMatrix(s string) (math2d.Matrix, error) {
	var m math2d.Matrix
	parts := strings.Split(s, ",")
	if len(parts) != len(m) {
		return m, fmt.Errorf("need %d comma separated values, got %d", len(m), len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return m, fmt.Errorf("element %d: %w", i, err)
		}
		m[i] = f
	}
	return m, nil
}
