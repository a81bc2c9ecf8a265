package stats

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{"zulu with millis", "2024-03-01T10:20:30.123Z", time.Date(2024, 3, 1, 10, 20, 30, 123000000, time.UTC), true},
		{"zulu", "2024-03-01T10:20:30Z", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), true},
		{"offset", "2024-03-01T12:20:30+02:00", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), true},
		{"naive", "2024-03-01T10:20:30.5", time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC), true},
		{"space separator", "2024-03-01 10:20:30", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), true},
		{"date only", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
		{"bad month", "2024-13-01T00:00:00Z", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
