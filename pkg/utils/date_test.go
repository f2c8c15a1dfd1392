package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "Data com mês e dia de um dígito é zero-padded",
			date:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-05",
		},
		{
			name:     "Hora do dia não altera a data formatada",
			date:     time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local),
			expected: "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.date))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 1, 30, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 2, 8, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)

	assert.Len(t, days, 4)
	assert.Equal(t, "2025-01-30", FormatDate(days[0]))
	assert.Equal(t, "2025-01-31", FormatDate(days[1]))
	assert.Equal(t, "2025-02-01", FormatDate(days[2]))
	assert.Equal(t, "2025-02-02", FormatDate(days[3]))
}

func TestDaysBetweenSameDay(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	days := DaysBetween(day, day)
	assert.Len(t, days, 1)
}

func TestDaysBetweenStartAfterEnd(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, DaysBetween(start, end))
}

func TestClampToMaxWindow(t *testing.T) {
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Período dentro da janela não é alterado", func(t *testing.T) {
		start := end.AddDate(0, 0, -30)
		assert.Equal(t, start, ClampToMaxWindow(start, end))
	})

	t.Run("Período acima do limite é ajustado para a janela máxima", func(t *testing.T) {
		start := end.AddDate(0, 0, -200)
		clamped := ClampToMaxWindow(start, end)
		assert.Equal(t, end.AddDate(0, 0, -MaxAdsWindowDays), clamped)
	})
}

func TestStartOfYear(t *testing.T) {
	now := time.Date(2025, 8, 31, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", FormatDate(StartOfYear(now)))
}
