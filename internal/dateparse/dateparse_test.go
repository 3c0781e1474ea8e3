package dateparse

import (
	"errors"
	"testing"
	"time"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

func TestParse_RelativeKeywords(t *testing.T) {
	loc := time.FixedZone("Test", -5*60*60)
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, loc)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "now",
			in:   "now",
			want: now,
		},
		{
			name: "today",
			in:   "today",
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, loc),
		},
		{
			name: "yesterday",
			in:   "Yesterday",
			want: time.Date(2025, 1, 14, 0, 0, 0, 0, loc),
		},
		{
			name: "tomorrow",
			in:   "tomorrow",
			want: time.Date(2025, 1, 16, 0, 0, 0, 0, loc),
		},
		{
			name: "noon",
			in:   "noon",
			want: time.Date(2025, 1, 15, 12, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, loc, now)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_RelativeDuration(t *testing.T) {
	loc := time.FixedZone("Test", -5*60*60)
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, loc)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "hours ago",
			in:   "2h ago",
			want: now.Add(-2 * time.Hour),
		},
		{
			name: "hours without ago (future)",
			in:   "2h",
			want: now.Add(2 * time.Hour),
		},
		{
			name: "days ago",
			in:   "2d ago",
			want: now.Add(-48 * time.Hour),
		},
		{
			name: "weeks",
			in:   "1w",
			want: now.Add(7 * 24 * time.Hour),
		},
		{
			name: "calendar month ago",
			in:   "1mo ago",
			want: time.Date(2024, 12, 15, 10, 30, 0, 0, loc),
		},
		{
			name: "compound duration ago",
			in:   "1h30m ago",
			want: now.Add(-90 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, loc, now)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Weekday(t *testing.T) {
	loc := time.FixedZone("Test", -5*60*60)
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, loc) // Wednesday

	got, err := Parse("monday", loc, now)
	if err != nil {
		t.Fatalf("Parse(\"monday\") error = %v", err)
	}

	want := time.Date(2025, 1, 20, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Parse(\"monday\") = %v, want %v", got, want)
	}

	got, err = Parse("next friday", loc, now)
	if err != nil {
		t.Fatalf("Parse(\"next friday\") error = %v", err)
	}

	want = time.Date(2025, 1, 17, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Parse(\"next friday\") = %v, want %v", got, want)
	}

	got, err = Parse("last wednesday", loc, now)
	if err != nil {
		t.Fatalf("Parse(\"last wednesday\") error = %v", err)
	}

	want = time.Date(2025, 1, 8, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Parse(\"last wednesday\") = %v, want %v", got, want)
	}
}

func TestParse_Absolute(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	bratislava, err := time.LoadLocation("Europe/Bratislava")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		in   string
		loc  *time.Location
		want time.Time
	}{
		{"rfc3339", "2024-01-15T12:00:00Z", time.UTC, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{"date", "2024-01-15", time.UTC, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"iso micros", "2021-12-31T14:30:00.500000", time.UTC, time.Date(2021, 12, 31, 14, 30, 0, 500000000, time.UTC)},
		{"mysql", "2021-12-31 14:30:00", time.UTC, time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)},
		{"european", "31.12.2021 08:30:00", time.UTC, time.Date(2021, 12, 31, 8, 30, 0, 0, time.UTC)},
		{"european zone", "31.12.2021 08:30:00", bratislava, time.Date(2021, 12, 31, 7, 30, 0, 0, time.UTC)},
		{"clock only", "16:30", time.UTC, time.Date(2025, 1, 15, 16, 30, 0, 0, time.UTC)},
		{"timestamp", "1640961000", time.UTC, time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.loc, now)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	for _, in := range []string{"", "not-a-date", "soon ago"} {
		_, err := Parse(in, time.UTC, now)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
		if !errors.Is(err, cerrors.ErrInvalidDateFormat) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidDateFormat", in, err)
		}
	}
}

func TestFromNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"1640961000", time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)},
		{"1640961000500", time.Date(2021, 12, 31, 14, 30, 0, 500000000, time.UTC)},
		{"1640961000.25", time.Date(2021, 12, 31, 14, 30, 0, 250000000, time.UTC)},
		{"0", time.Unix(0, 0).UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromNumeric(tt.in, nil)
			if err != nil {
				t.Fatalf("FromNumeric(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("FromNumeric(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := FromNumeric("12a", nil); !errors.Is(err, cerrors.ErrInvalidDateFormat) {
		t.Fatalf("FromNumeric(\"12a\") error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestFrom(t *testing.T) {
	now := time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)
	bratislava, err := time.LoadLocation("Europe/Bratislava")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	t.Run("nil is now", func(t *testing.T) {
		got, err := From(nil, nil, now)
		if err != nil || !got.Equal(now) {
			t.Fatalf("From(nil) = %v, %v", got, err)
		}
	})

	t.Run("time converted to location", func(t *testing.T) {
		got, err := From(now, bratislava, now)
		if err != nil {
			t.Fatalf("From error = %v", err)
		}
		if got.Hour() != 15 || got.Location() != bratislava {
			t.Fatalf("From(time, bratislava) = %v", got)
		}
	})

	t.Run("time keeps own location without override", func(t *testing.T) {
		in := now.In(bratislava)
		got, err := From(in, nil, now)
		if err != nil || got.Location() != bratislava {
			t.Fatalf("From(time, nil) = %v, %v", got, err)
		}
	})

	t.Run("integer timestamp", func(t *testing.T) {
		got, err := From(int64(1640961000), nil, time.Time{})
		if err != nil || !got.Equal(now) {
			t.Fatalf("From(int64) = %v, %v", got, err)
		}
	})

	t.Run("string", func(t *testing.T) {
		got, err := From("2021-12-31 14:30:00", time.UTC, time.Time{})
		if err != nil || !got.Equal(now) {
			t.Fatalf("From(string) = %v, %v", got, err)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		if _, err := From([]byte("x"), nil, now); !errors.Is(err, cerrors.ErrInvalidArgument) {
			t.Fatalf("From([]byte) error = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.Local {
		t.Fatalf("LoadLocation(\"\") = %v, %v", loc, err)
	}
	if loc, err := LoadLocation("UTC"); err != nil || loc.String() != "UTC" {
		t.Fatalf("LoadLocation(\"UTC\") = %v, %v", loc, err)
	}

	_, err := LoadLocation("Mars/Olympus")
	if !errors.Is(err, cerrors.ErrInvalidArgument) {
		t.Fatalf("LoadLocation(bad) error = %v, want ErrInvalidArgument", err)
	}
	if !cerrors.ContainsSuggestion(err) {
		t.Fatalf("LoadLocation(bad) error has no suggestion")
	}
}

func TestModify(t *testing.T) {
	base := time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC) // Friday

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"empty", "", base},
		{"signed sequence", "-2 hour -5 minutes", base.Add(-2*time.Hour - 5*time.Minute)},
		{"sign carries", "-1 day 2 hours", base.Add(-26 * time.Hour)},
		{"positive", "+1 week", base.AddDate(0, 0, 7)},
		{"ago", "3 days ago", base.AddDate(0, 0, -3)},
		{"month overflow", "-1 month", time.Date(2021, 12, 1, 14, 30, 0, 0, time.UTC)},
		{"yesterday", "yesterday", time.Date(2021, 12, 30, 0, 0, 0, 0, time.UTC)},
		{"last friday", "last friday", time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Modify(base, tt.in)
			if err != nil {
				t.Fatalf("Modify(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Modify(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModify_Invalid(t *testing.T) {
	base := time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)
	if _, err := Modify(base, "qwerty zxcv"); !errors.Is(err, cerrors.ErrInvalidDateFormat) {
		t.Fatalf("Modify(garbage) error = %v, want ErrInvalidDateFormat", err)
	}
}
