package util

import "testing"

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative values", page: -3, limit: -1, wantPage: 1, wantLimit: 10},
		{name: "explicit values", page: 3, limit: 25, wantPage: 3, wantLimit: 25},
		{name: "limit capped", page: 2, limit: 500, wantPage: 2, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, limit := NormalizePage(tt.page, tt.limit, 10, 100)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Fatalf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 0},
		{name: "exact fit", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single row", total: 1, limit: 100, expected: 1},
		{name: "invalid limit", total: 5, limit: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TotalPages(tt.total, tt.limit); got != tt.expected {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.expected)
			}
		})
	}
}
