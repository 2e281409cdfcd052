package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical morning", input: "9:00 AM", want: "9:00 AM"},
		{name: "canonical noon", input: "12:00 PM", want: "12:00 PM"},
		{name: "zero padded", input: "09:00 AM", want: "9:00 AM"},
		{name: "lower case", input: "2:00 pm", want: "2:00 PM"},
		{name: "no space", input: "10:00PM", want: "10:00 PM"},
		{name: "24h clock", input: "14:00", want: "2:00 PM"},
		{name: "24h with seconds", input: "21:00:00", want: "9:00 PM"},
		{name: "surrounding spaces", input: "  1:00 PM ", want: "1:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeLabel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseTimeLabel_Invalid(t *testing.T) {
	for _, input := range []string{"", "noon", "25:00", "9 AM"} {
		_, err := ParseTimeLabel(input)
		assert.ErrorIs(t, err, ErrInvalidTimeLabel, input)
	}
}

func TestTimeLabel_Ordering(t *testing.T) {
	morning := MustParseTimeLabel("9:00 AM")
	evening := MustParseTimeLabel("9:00 PM")

	assert.True(t, morning.IsBefore(evening))
	assert.False(t, evening.IsBefore(morning))
	assert.Equal(t, 9*60, morning.Minutes())
	assert.Equal(t, "21:00", evening.Clock())
}

func TestTimeLabel_Scan(t *testing.T) {
	var l TimeLabel

	require.NoError(t, l.Scan("10:00:00"))
	assert.Equal(t, "10:00 AM", l.String())

	require.NoError(t, l.Scan([]byte("13:00")))
	assert.Equal(t, "1:00 PM", l.String())

	require.NoError(t, l.Scan(time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10:00 PM", l.String())

	assert.Error(t, l.Scan(42))
}

func TestNewTimeLabel(t *testing.T) {
	l, err := NewTimeLabel(0, 30)
	require.NoError(t, err)
	assert.Equal(t, "12:30 AM", l.String())

	_, err = NewTimeLabel(24, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeLabel)
}
