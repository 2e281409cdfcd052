package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_CellCount(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 17, 13, 45, 0, 0, time.UTC)
			grid := BuildMonthGrid(ref)

			firstWeekday := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
			require.Equal(t, firstWeekday, grid.LeadingBlanks, "%d-%02d", year, month)
			require.Len(t, grid.Cells, grid.LeadingBlanks+grid.DaysInMonth, "%d-%02d", year, month)
			require.GreaterOrEqual(t, grid.LeadingBlanks, 0)
			require.LessOrEqual(t, grid.LeadingBlanks, 6)

			for i := 0; i < grid.LeadingBlanks; i++ {
				require.Zero(t, grid.Cells[i])
			}
			for i, day := range grid.Cells[grid.LeadingBlanks:] {
				require.Equal(t, i+1, day)
			}
		}
	}
}

func TestBuildMonthGrid_DaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{name: "leap february", ref: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "non-leap february", ref: time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC), want: 28},
		{name: "century non-leap", ref: time.Date(1900, time.February, 1, 0, 0, 0, 0, time.UTC), want: 28},
		{name: "quad century leap", ref: time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "april", ref: time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "december", ref: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMonthGrid(tt.ref).DaysInMonth)
		})
	}
}

func TestBuildMonthGrid_Label(t *testing.T) {
	grid := BuildMonthGrid(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "March 2024", grid.Label)
	// 1 марта 2024 - пятница
	assert.Equal(t, 5, grid.LeadingBlanks)
	assert.Len(t, grid.Cells, 36)
}

func TestCalendarMonth_ShiftWrapsYear(t *testing.T) {
	month := BuildMonthGrid(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)).Month

	for i := 0; i < 12; i++ {
		month = month.Shift(1)
	}

	assert.Equal(t, CalendarMonth{Year: 2025, Month: time.January}, month)
	assert.Equal(t, CalendarMonth{Year: 2024, Month: time.December}, month.Shift(-1))
	assert.Equal(t, CalendarMonth{Year: 2023, Month: time.January}, month.Shift(-24))
}

func TestCalendarMonth_ISODate(t *testing.T) {
	month := CalendarMonth{Year: 2024, Month: time.March}

	assert.Equal(t, "2024-03-05", month.ISODate(5))
	assert.Equal(t, "2024-03-15", month.ISODate(15))
	assert.Equal(t, "2024-03", month.String())
}

func TestCalendarMonth_Contains(t *testing.T) {
	feb := CalendarMonth{Year: 2023, Month: time.February}

	assert.True(t, feb.Contains(1))
	assert.True(t, feb.Contains(28))
	assert.False(t, feb.Contains(29))
	assert.False(t, feb.Contains(0))
}

func TestCalendarMonth_IsPastDay(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	march := CalendarMonth{Year: 2024, Month: time.March}

	assert.True(t, march.IsPastDay(14, now))
	assert.False(t, march.IsPastDay(15, now))
	assert.False(t, march.IsPastDay(16, now))
	assert.True(t, march.Shift(-1).IsPastDay(28, now))
	assert.False(t, march.Shift(1).IsPastDay(1, now))
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-11")
	require.NoError(t, err)
	assert.Equal(t, CalendarMonth{Year: 2024, Month: time.November}, month)

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)
}
