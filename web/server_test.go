package web

import (
	"testing"
	"time"
)

func TestUpdatedFormatter(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{t: time.Time{}, want: "Never"},
		{t: time.Date(2026, 1, 6, 19, 30, 0, 0, time.UTC), want: "2026-01-06 19:30"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := updatedFormatter(tc.t)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestWeekFormatter(t *testing.T) {
	tests := []struct {
		week int
		want string
	}{
		{week: 1, want: "Wk-1"},
		{week: 12, want: "Wk-12"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := weekFormatter(tc.week)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
