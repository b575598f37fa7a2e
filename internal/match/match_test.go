package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "main", b: "main", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "main", b: "", want: 0},
		{name: "no overlap", a: "zzz", b: "main", want: 0},
		{name: "close names", a: "amin", b: "admin", want: 2 * 4.0 / 9.0},
		{name: "transposed", a: "amin", b: "main", want: 2 * 3.0 / 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioSymmetricOrder(t *testing.T) {
	// The score must rank admin above main for the query amin regardless of
	// argument order.
	assert.Greater(t, Ratio("amin", "admin"), Ratio("amin", "main"))
	assert.Greater(t, Ratio("admin", "amin"), Ratio("main", "amin"))
}

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "fuzzy match picks highest score",
			query:      "amin",
			candidates: []string{"admin", "main", "staging"},
			want:       "admin",
			wantOK:     true,
		},
		{
			name:       "exact match wins immediately",
			query:      "main",
			candidates: []string{"maine", "main", "domain"},
			want:       "main",
			wantOK:     true,
		},
		{
			name:       "nothing clears the cutoff",
			query:      "zzz",
			candidates: []string{"admin", "main"},
			wantOK:     false,
		},
		{
			name:       "empty query",
			query:      "",
			candidates: []string{"main"},
			wantOK:     false,
		},
		{
			name:       "empty candidates",
			query:      "main",
			candidates: nil,
			wantOK:     false,
		},
		{
			name:       "tie keeps first candidate",
			query:      "ab",
			candidates: []string{"abc", "abd"},
			want:       "abc",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.query, tt.candidates, DefaultCutoff)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSortBySimilarity(t *testing.T) {
	in := []string{"branches", "install", "publish", "settings", "switch", "sync", "undo", "unpublish"}
	got := SortBySimilarity(in)

	require.ElementsMatch(t, in, got, "sort must be a permutation")

	// unpublish is the only name close enough to another (publish) to be
	// regrouped; everything else keeps its original relative order.
	want := []string{"branches", "install", "publish", "unpublish", "settings", "switch", "sync", "undo"}
	assert.Equal(t, want, got)
}

func TestSortBySimilarityNoCloseNames(t *testing.T) {
	in := []string{"alpha", "kilo", "zulu"}
	assert.Equal(t, in, SortBySimilarity(in), "unrelated names keep original order")
}
