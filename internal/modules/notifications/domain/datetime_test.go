package domain

import "testing"

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		iso  string
		want string
	}{
		{name: "noon second of month", iso: "2025-12-02T12:00:00Z", want: "2nd December 2025 at 12:00 PM"},
		{name: "midnight first of month", iso: "2025-01-01T00:00:00Z", want: "1st January 2025 at 12:00 AM"},
		{name: "twenty-first", iso: "2025-03-21T09:30:00Z", want: "21st March 2025 at 9:30 AM"},
		{name: "twenty-second", iso: "2025-03-22T09:30:00Z", want: "22nd March 2025 at 9:30 AM"},
		{name: "twenty-third", iso: "2025-03-23T17:05:00Z", want: "23rd March 2025 at 5:05 PM"},
		{name: "thirty-first", iso: "2025-07-31T23:59:00Z", want: "31st July 2025 at 11:59 PM"},
		{name: "teens use th", iso: "2025-06-11T08:00:00Z", want: "11th June 2025 at 8:00 AM"},
		{name: "plain th", iso: "2025-06-15T08:00:00Z", want: "15th June 2025 at 8:00 AM"},
		{name: "offset normalized to utc", iso: "2025-12-02T14:00:00+02:00", want: "2nd December 2025 at 12:00 PM"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FormatDateTime(tt.iso)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FormatDateTime(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestFormatDateTimeRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := FormatDateTime("tomorrow-ish"); err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
	if _, err := FormatDateTime(""); err == nil {
		t.Fatal("expected error for empty timestamp")
	}
}
