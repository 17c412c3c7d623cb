package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPageParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/customers", nil)
	page, pageSize := GetPageParams(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestGetPageParamsPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"explicit values", "page=3&pageSize=25", 3, 25},
		{"garbage falls back", "page=abc&pageSize=xyz", 1, 10},
		{"negative page is not clamped", "page=-2&pageSize=5", -2, 5},
		{"zero page is not clamped", "page=0", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/customers?"+tt.query, nil)
			page, pageSize := GetPageParams(r)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.pageSize, pageSize)
		})
	}
}

func TestPageSlice(t *testing.T) {
	list := make([]int, 50)
	for i := range list {
		list[i] = i + 1
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{"first page", 1, 5, []int{1, 2, 3, 4, 5}},
		{"second page", 2, 5, []int{6, 7, 8, 9, 10}},
		{"last partial page", 5, 12, []int{49, 50}},
		{"past the end", 7, 10, []int{}},
		{"negative offset", -1, 10, []int{}},
		{"zero page", 0, 10, []int{}},
		{"zero page size", 1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageSlice(list, tt.page, tt.pageSize))
		})
	}
}
