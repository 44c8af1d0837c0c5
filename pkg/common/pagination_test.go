package common

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := seq(25)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, seq(10)},
		{"middle page", 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"partial last page", 3, []int{21, 22, 23, 24, 25}},
		{"past the end", 4, []int{}},
		{"far past the end", 1000, []int{}},
		{"largest int page", math.MaxInt, []int{}},
		{"zero page", 0, []int{}},
		{"negative page", -3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, QuestionsPerPage)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	got := Paginate([]string{}, 1, QuestionsPerPage)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Paginate[string](nil, 1, QuestionsPerPage)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	items := seq(5)
	got := Paginate(items, 1, QuestionsPerPage)
	got[0] = 99

	assert.Equal(t, 1, items[0])
}

func TestExtractPage(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=abc", 1},
		{"?page=", 1},
		{"?page=1.5", 1},
		{"?page=0", 0},
		{"?page=99999999999999999999", math.MaxInt},
		{"?page=-99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/questions"+tt.query, nil)
			assert.Equal(t, tt.want, ExtractPage(r))
		})
	}
}
