package model

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2026-03-15"},
		{name: "leap day", input: "2024-02-29"},
		{name: "wrong layout", input: "15/03/2026", wantErr: true},
		{name: "with time component", input: "2026-03-15T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "nonexistent day", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ParseDate(%q) expected error, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single night", start: "2026-03-15", end: "2026-03-16", want: 1},
		{name: "week long stay", start: "2026-03-15", end: "2026-03-22", want: 7},
		{name: "same day", start: "2026-03-15", end: "2026-03-15", want: 0},
		{name: "across month boundary", start: "2026-03-30", end: "2026-04-02", want: 3},
		{name: "across year boundary", start: "2026-12-30", end: "2027-01-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nights(mustDate(t, tt.start), mustDate(t, tt.end))
			if got != tt.want {
				t.Errorf("Nights(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		e1   string
		s2   string
		e2   string
		want bool
	}{
		{
			name: "identical ranges",
			s1:   "2026-03-10", e1: "2026-03-15",
			s2: "2026-03-10", e2: "2026-03-15",
			want: true,
		},
		{
			name: "partial overlap at tail",
			s1:   "2026-03-10", e1: "2026-03-15",
			s2: "2026-03-13", e2: "2026-03-20",
			want: true,
		},
		{
			name: "one contains the other",
			s1:   "2026-03-10", e1: "2026-03-20",
			s2: "2026-03-12", e2: "2026-03-14",
			want: true,
		},
		{
			name: "back to back, second starts on checkout day",
			s1:   "2026-03-10", e1: "2026-03-15",
			s2: "2026-03-15", e2: "2026-03-20",
			want: false,
		},
		{
			name: "back to back, first starts on checkout day",
			s1:   "2026-03-15", e1: "2026-03-20",
			s2: "2026-03-10", e2: "2026-03-15",
			want: false,
		},
		{
			name: "fully disjoint",
			s1:   "2026-03-01", e1: "2026-03-05",
			s2: "2026-03-20", e2: "2026-03-25",
			want: false,
		},
		{
			name: "single shared night",
			s1:   "2026-03-10", e1: "2026-03-15",
			s2: "2026-03-14", e2: "2026-03-16",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				mustDate(t, tt.s1), mustDate(t, tt.e1),
				mustDate(t, tt.s2), mustDate(t, tt.e2),
			)
			if got != tt.want {
				t.Errorf("Overlaps([%s,%s), [%s,%s)) = %v, want %v",
					tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}

func TestDateOf_TruncatesTimeComponent(t *testing.T) {
	instant := time.Date(2026, 3, 15, 23, 45, 12, 999, time.UTC)
	d := DateOf(instant)

	if d.String() != "2026-03-15" {
		t.Errorf("DateOf() = %s, want 2026-03-15", d.String())
	}
	if h, m, s := d.Time.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("DateOf() kept a time component: %02d:%02d:%02d", h, m, s)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := mustDate(t, "2026-03-15")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-03-15"` {
		t.Errorf("Marshal = %s, want \"2026-03-15\"", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Time.Equal(d.Time) {
		t.Errorf("round trip changed date: got %s, want %s", decoded, d)
	}
}

func TestDate_UnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15-03-2026"`), &d); err == nil {
		t.Errorf("expected error for non ISO date")
	}
}
