package render

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func near(a, b r2.Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name  string
		build func(tr *Transform)
		in    r2.Point
		want  r2.Point
	}{
		{
			name:  "identity",
			build: func(tr *Transform) {},
			in:    r2.Point{X: 3, Y: 4},
			want:  r2.Point{X: 3, Y: 4},
		},
		{
			name:  "translate",
			build: func(tr *Transform) { tr.Translate(10, 20) },
			in:    r2.Point{X: 1, Y: 1},
			want:  r2.Point{X: 11, Y: 21},
		},
		{
			name: "translate_then_rotate_rotates_about_new_origin",
			build: func(tr *Transform) {
				tr.Translate(100, 50)
				tr.Rotate(math.Pi / 2)
			},
			in:   r2.Point{X: 0, Y: -12},
			want: r2.Point{X: 112, Y: 50},
		},
		{
			name: "rotate_then_translate_moves_along_rotated_axis",
			build: func(tr *Transform) {
				tr.Rotate(math.Pi / 2)
				tr.Translate(10, 0)
			},
			in:   r2.Point{},
			want: r2.Point{X: 0, Y: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tr Transform
			tc.build(&tr)
			if got := tr.Apply(tc.in); !near(got, tc.want) {
				t.Fatalf("Apply(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransformPushPop(t *testing.T) {
	var tr Transform
	tr.Translate(5, 5)

	tr.Push()
	tr.Translate(100, 0)
	tr.Rotate(1)
	if tr.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", tr.Depth())
	}
	if !tr.Pop() {
		t.Fatalf("Pop should succeed after Push")
	}

	if got := tr.Apply(r2.Point{}); !near(got, r2.Point{X: 5, Y: 5}) {
		t.Fatalf("expected restored origin (5,5), got %v", got)
	}
	if tr.Pop() {
		t.Fatalf("Pop on empty stack should report false")
	}
}

func TestTransformScoped(t *testing.T) {
	var tr Transform
	tr.Scoped(func() {
		tr.Translate(7, 8)
		if tr.Depth() != 1 {
			t.Fatalf("expected depth 1 inside scope, got %d", tr.Depth())
		}
	})
	if tr.Depth() != 0 {
		t.Fatalf("expected depth 0 after scope, got %d", tr.Depth())
	}
	if got := tr.Apply(r2.Point{X: 1, Y: 1}); !near(got, r2.Point{X: 1, Y: 1}) {
		t.Fatalf("expected identity after scope, got %v", got)
	}
}
