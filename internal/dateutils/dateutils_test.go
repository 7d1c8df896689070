package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339",
			input: "2026-03-05T10:30:00Z",
			want:  time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "full datetime",
			input: "2026-03-05 10:30:00",
			want:  time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "ISO date",
			input: "2026-03-05",
			want:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "european date",
			input: "05.03.2026",
			want:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2026-03-05  ",
			want:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "empty yields zero time",
			input: "",
			want:  time.Time{},
		},
		{
			name:    "unparseable",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2026-03-05", ToISODate(time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}
