package combine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lguimbarda/lockstep/traverse/combine"
)

func TestTranspose(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want [][]int
	}{
		{
			name: "rectangular",
			rows: [][]int{{1, 2, 3}, {4, 5, 6}},
			want: [][]int{{1, 4}, {2, 5}, {3, 6}},
		},
		{
			name: "ragged truncates to shortest row",
			rows: [][]int{{1, 2, 3}, {4}},
			want: [][]int{{1, 4}},
		},
		{
			name: "single row",
			rows: [][]int{{1, 2}},
			want: [][]int{{1}, {2}},
		},
		{
			name: "row of zero length",
			rows: [][]int{{1, 2}, {}},
			want: [][]int{},
		},
		{
			name: "empty input",
			rows: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := combine.Transpose(tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Transpose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransposeInvolution(t *testing.T) {
	// Transposing twice returns the original rows on rectangular input.
	rows := [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	}
	got := combine.Transpose(combine.Transpose(rows))
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("double transpose mismatch (-want +got):\n%s", diff)
	}
}
