package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2024-01-01", "2024-01-04", 3},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2024-01-01", "2024-01-01", 0},
	}
	for _, tc := range cases {
		if got := Nights(day(tc.in), day(tc.out)); got != tc.want {
			t.Fatalf("Nights(%s, %s) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	in := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	out := time.Date(2024, 1, 4, 0, 15, 0, 0, time.UTC)
	if got := Nights(in, out); got != 3 {
		t.Fatalf("expected 3 nights regardless of time-of-day, got %d", got)
	}
}

func TestRole_IsValid(t *testing.T) {
	if !RoleUser.IsValid() || !RoleAdmin.IsValid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("superuser").IsValid() {
		t.Fatalf("unknown role must be invalid")
	}
}

func TestDestination_HasPrice(t *testing.T) {
	v := 10.0
	zero := 0.0
	if (&Destination{Price: &v}).HasPrice() != true {
		t.Fatalf("positive price must count as priced")
	}
	if (&Destination{}).HasPrice() {
		t.Fatalf("nil price must not count as priced")
	}
	if (&Destination{Price: &zero}).HasPrice() {
		t.Fatalf("zero price must not count as priced")
	}
}
