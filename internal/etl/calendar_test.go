package etl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inflybi/warehouse/internal/etl"
)

func strp(s string) *string { return &s }

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"DateTime", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"DateOnly", "2024-03-15", date(2024, 3, 15), true},
		{"RFC3339", "2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"TimeOnly", "10:30:00", time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC), true},
		{"TimeShort", "10:30", time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC), true},
		{"Blank", "   ", time.Time{}, false},
		{"Garbage", "not-a-date", time.Time{}, false},
		{"PartialNumbers", "2024-13-45", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := etl.ParseDateTime(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestBuildCalendar_Uniqueness(t *testing.T) {
	// Same day through three different literals plus a duplicate.
	cal := etl.BuildCalendar([]*string{
		strp("2024-03-15"),
		strp("2024-03-15 08:00:00"),
		strp("2024-03-15 17:45:00"),
		strp("2024-03-15"),
		strp("2024-03-16"),
		nil,
		strp("banana"),
	})

	rows := cal.Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, date(2024, 3, 15), rows[0].Data)
	assert.Equal(t, date(2024, 3, 16), rows[1].Data)
}

func TestBuildCalendar_DeterministicKeys(t *testing.T) {
	// Keys follow ascending date order, not input order.
	cal := etl.BuildCalendar([]*string{
		strp("2024-12-01"),
		strp("2023-01-10"),
		strp("2024-06-30"),
	})

	rows := cal.Rows()
	require.Len(t, rows, 3)

	assert.Equal(t, int64(0), rows[0].ID)
	assert.Equal(t, date(2023, 1, 10), rows[0].Data)
	assert.Equal(t, int64(1), rows[1].ID)
	assert.Equal(t, date(2024, 6, 30), rows[1].Data)
	assert.Equal(t, int64(2), rows[2].ID)
	assert.Equal(t, date(2024, 12, 1), rows[2].Data)
}

func TestBuildCalendar_Attributes(t *testing.T) {
	cal := etl.BuildCalendar([]*string{strp("2024-02-29 13:00:00")})

	rows := cal.Rows()
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 2024, r.Ano)
	assert.Equal(t, 2, r.Mes)
	assert.Equal(t, 29, r.Dia)
	assert.Equal(t, "February", r.NomeMes)
	assert.Equal(t, 9, r.Semana) // ISO week of 2024-02-29
	assert.Equal(t, 1, r.Trimestre)
}

func TestBuildCalendar_Quarters(t *testing.T) {
	cal := etl.BuildCalendar([]*string{
		strp("2024-01-01"),
		strp("2024-04-01"),
		strp("2024-09-30"),
		strp("2024-10-01"),
	})

	rows := cal.Rows()
	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Trimestre)
	assert.Equal(t, 2, rows[1].Trimestre)
	assert.Equal(t, 3, rows[2].Trimestre)
	assert.Equal(t, 4, rows[3].Trimestre)
}

func TestCalendar_Ref(t *testing.T) {
	cal := etl.BuildCalendar([]*string{strp("2024-03-15 08:00:00")})

	t.Run("TimestampResolvesToItsDay", func(t *testing.T) {
		ref := cal.RefRaw(strp("2024-03-15 23:59:59"))
		require.NotNil(t, ref)
		assert.Equal(t, int64(0), *ref)
	})

	t.Run("MissingDate", func(t *testing.T) {
		assert.Nil(t, cal.RefRaw(strp("1999-01-01")))
	})

	t.Run("NilValue", func(t *testing.T) {
		assert.Nil(t, cal.RefRaw(nil))
	})

	t.Run("UnparseableValue", func(t *testing.T) {
		assert.Nil(t, cal.RefRaw(strp("??")))
	})
}

func TestBuildCalendar_TimeOnlyValues(t *testing.T) {
	// Activity times carry no date; they collapse onto the parser's zero
	// date but still live in the same calendar table.
	cal := etl.BuildCalendar([]*string{
		strp("09:00:00"),
		strp("10:30:00"),
		strp("2024-03-15"),
	})

	rows := cal.Rows()
	require.Len(t, rows, 2)

	ref := cal.RefRaw(strp("14:00:00"))
	require.NotNil(t, ref)
	assert.Equal(t, rows[0].ID, *ref)
}
