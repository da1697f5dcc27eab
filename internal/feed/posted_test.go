package feed

import (
	"testing"
	"time"
)

func TestParsePosted(t *testing.T) {
	cases := []struct {
		value string
		valid bool
		want  time.Time
	}{
		{"01/01/2025 10:00", true, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"31/12/2024 23:59", true, time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)},
		{" 02/01/2025 09:00 ", true, time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)},
		{"2/1/2025 09:00", false, time.Time{}},
		{"02/01/2025 9:00", false, time.Time{}},
		{"2025-01-02", false, time.Time{}},
		{"31/02/2025 10:00", false, time.Time{}},
		{"13/13/2025 10:00", false, time.Time{}},
		{"02/01/2025 24:00", false, time.Time{}},
		{"not-a-date", false, time.Time{}},
		{"", false, time.Time{}},
	}

	for _, tc := range cases {
		got := ParsePosted(tc.value)
		if got.Valid() != tc.valid {
			t.Fatalf("ParsePosted(%q).Valid() = %v, want %v", tc.value, got.Valid(), tc.valid)
		}
		if tc.valid && !got.Time().Equal(tc.want) {
			t.Fatalf("ParsePosted(%q) = %v, want %v", tc.value, got.Time(), tc.want)
		}
	}
}

func TestInstantCompare(t *testing.T) {
	early := ParsePosted("01/01/2025 10:00")
	late := ParsePosted("02/01/2025 09:00")
	bad := ParsePosted("soon")

	if early.Compare(late) >= 0 {
		t.Fatalf("expected early < late")
	}
	if late.Compare(early) <= 0 {
		t.Fatalf("expected late > early")
	}
	if bad.Compare(early) >= 0 {
		t.Fatalf("expected unparsable < parsable")
	}
	if early.Compare(bad) <= 0 {
		t.Fatalf("expected parsable > unparsable")
	}
	if bad.Compare(Instant{}) != 0 {
		t.Fatalf("expected unparsable instants to be equal")
	}
}

func TestPostedAgo(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		value string
		want  string
	}{
		{"01/03/2025 11:59", "1 minute ago"},
		{"01/03/2025 12:00", "just now"},
		{"01/03/2025 09:00", "3 hours ago"},
		{"27/02/2025 12:00", "2 days ago"},
		{"01/01/2025 12:00", "1 month ago"},
		{"01/01/2023 12:00", "2 years ago"},
		{"garbage", "Recently posted"},
	}

	for _, tc := range cases {
		if got := PostedAgo(tc.value, now); got != tc.want {
			t.Fatalf("PostedAgo(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
