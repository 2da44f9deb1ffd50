package handlers

import (
	"errors"
	"testing"
)

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int64
		wantLimit int64
		wantErr   bool
	}{
		{"defaults when empty", "", "", 1, 20, false},
		{"explicit values", "3", "50", 3, 50, false},
		{"page only", "2", "", 2, 20, false},
		{"zero page", "0", "10", 0, 0, true},
		{"negative limit", "1", "-5", 0, 0, true},
		{"non-numeric page", "two", "10", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, limit, err := parsePaginationParams(tc.pageStr, tc.limitStr)
			if tc.wantErr {
				if !errors.Is(err, errInvalidPagination) {
					t.Fatalf("expected invalid pagination error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("got (%d, %d), want (%d, %d)", page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}
