package session

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{60, "01:00"},
		{90, "01:30"},
		{599, "09:59"},
		{600, "10:00"},
		{3600, "60:00"},
		{3661, "61:01"}, // minutes are not wrapped at an hour
		{-5, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.seconds); got != tc.want {
			t.Fatalf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
