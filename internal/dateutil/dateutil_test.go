package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompileFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		format    string
		wantOut   string
		wantParse string
		wantErr   error
	}{
		{
			name:      "default post format",
			format:    "MMMM DD, YYYY",
			wantOut:   "January 02, 2006",
			wantParse: "January 2, 2006",
		},
		{
			name:      "post preset",
			format:    "post",
			wantOut:   "January 02, 2006",
			wantParse: "January 2, 2006",
		},
		{
			name:      "preset is case-insensitive",
			format:    "ISO",
			wantOut:   "2006-01-02",
			wantParse: "2006-1-2",
		},
		{
			name:      "short month and year",
			format:    "MMM YY",
			wantOut:   "Jan 06",
			wantParse: "Jan 06",
		},
		{
			name:      "unpadded tokens",
			format:    "D/M/YYYY",
			wantOut:   "2/1/2006",
			wantParse: "2/1/2006",
		},
		{
			name:      "bracket escapes literal text",
			format:    "[Posted] MMMM D",
			wantOut:   "Posted January 2",
			wantParse: "Posted January 2",
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "unclosed bracket",
			format:  "[Posted MMMM",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "too long",
			format:  strings.Repeat("Y", MaxDateFormatLength+1),
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CompileFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CompileFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompileFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got.Format != tt.wantOut {
				t.Errorf("CompileFormat(%q).Format = %q, want %q", tt.format, got.Format, tt.wantOut)
			}
			if got.Parse != tt.wantParse {
				t.Errorf("CompileFormat(%q).Parse = %q, want %q", tt.format, got.Parse, tt.wantParse)
			}
		})
	}
}

func TestParsePostDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		line    string
		label   string
		want    time.Time
		wantErr error
	}{
		{"padded day", "January 05, 2024", DefaultDateLabel, want, nil},
		{"unpadded day", "January 5, 2024", DefaultDateLabel, want, nil},
		{"abbreviated month", "Jan 05, 2024", DefaultDateLabel, want, nil},
		{"abbreviated month unpadded day", "Date: Jan 5, 2024", DefaultDateLabel, want, nil},
		{"abbreviated month with period rejected", "Jan. 05, 2024", DefaultDateLabel, time.Time{}, ErrInvalidDate},
		{"with label", "Date: January 05, 2024", DefaultDateLabel, want, nil},
		{"trailing carriage return", "Date: January 05, 2024\r", DefaultDateLabel, want, nil},
		{"surrounding spaces", "  January 05, 2024  ", DefaultDateLabel, want, nil},
		{"no label configured", "January 05, 2024", "", want, nil},
		{"custom label", "Published: January 05, 2024", "Published: ", want, nil},
		{"label not stripped when unconfigured", "Date: January 05, 2024", "", time.Time{}, ErrInvalidDate},
		{"iso date rejected", "2024-01-05", DefaultDateLabel, time.Time{}, ErrInvalidDate},
		{"markdown heading rejected", "# My post", DefaultDateLabel, time.Time{}, ErrInvalidDate},
		{"empty line rejected", "", DefaultDateLabel, time.Time{}, ErrInvalidDate},
		{"impossible day rejected", "February 30, 2024", DefaultDateLabel, time.Time{}, ErrInvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePostDate(tt.line, tt.label, DefaultLayout())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParsePostDate(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePostDate(%q) unexpected error: %v", tt.line, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePostDate(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCompileFormat_ShortParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"post", "Jan 2, 2006"},
		{"long", "Jan 2, 2006"},
		{"MMM D", ""},
		{"iso", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := CompileFormat(tt.format)
			if err != nil {
				t.Fatalf("CompileFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got.ShortParse != tt.want {
				t.Errorf("CompileFormat(%q).ShortParse = %q, want %q", tt.format, got.ShortParse, tt.want)
			}
		})
	}
}

func TestParsePostDate_ErrorNamesValue(t *testing.T) {
	t.Parallel()

	_, err := ParsePostDate("Date: someday", DefaultDateLabel, DefaultLayout())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"someday"`) {
		t.Errorf("error %q should quote the offending value", err)
	}
}

func TestFormatPostDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		date   time.Time
		want   string
	}{
		{"default zero-pads day", DefaultPostDateFormat, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "January 05, 2024"},
		{"default two-digit day", DefaultPostDateFormat, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), "December 25, 2023"},
		{"long preset", "long", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "January 5, 2024"},
		{"iso preset", "iso", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "2024-01-05"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout, err := CompileFormat(tt.format)
			if err != nil {
				t.Fatalf("CompileFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got := FormatPostDate(tt.date, layout); got != tt.want {
				t.Errorf("FormatPostDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for preset := range DatePresets {
		preset := preset
		t.Run(preset, func(t *testing.T) {
			t.Parallel()

			layout, err := CompileFormat(preset)
			if err != nil {
				t.Fatalf("CompileFormat(%q) unexpected error: %v", preset, err)
			}
			date := time.Date(2021, time.March, 9, 0, 0, 0, 0, time.UTC)
			got, err := ParsePostDate(FormatPostDate(date, layout), "", layout)
			if err != nil {
				t.Fatalf("ParsePostDate() unexpected error: %v", err)
			}
			if !got.Equal(date) {
				t.Errorf("round trip = %v, want %v", got, date)
			}
		})
	}
}
