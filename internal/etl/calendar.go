package etl

import (
	"sort"
	"strings"
	"time"

	"github.com/inflybi/warehouse/internal/warehouse"
)

// dateLayouts are tried in order by ParseDateTime. The source emits MySQL
// DATETIME, DATE and TIME literals; RFC 3339 shows up when a column was
// round-tripped through JSON at some point.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// ParseDateTime parses a raw source date/time literal. The bool is false for
// blanks and for values no known layout accepts.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// dateOnly truncates a parsed value to date granularity in UTC. Pure
// time-of-day values keep the zero date the parser assigned them and all
// collapse onto that single calendar row.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Calendar is the shared date dimension of one run plus the surrogate-key
// index the fact builders resolve through. It is built once, before any fact,
// and read-only afterwards.
type Calendar struct {
	rows []warehouse.Calendario
	keys map[time.Time]int64
}

// BuildCalendar deduplicates every parseable value in the given raw columns
// and assigns zero-based surrogate keys in ascending date order, so keys are
// stable across runs for unchanged input. Unparseable and null values are
// dropped here; the owning fact rows keep a nil reference instead.
func BuildCalendar(values []*string) *Calendar {
	distinct := make(map[time.Time]struct{})

	for _, v := range values {
		if v == nil {
			continue
		}

		t, ok := ParseDateTime(*v)
		if !ok {
			continue
		}

		distinct[dateOnly(t)] = struct{}{}
	}

	dates := make([]time.Time, 0, len(distinct))
	for d := range distinct {
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	cal := &Calendar{
		rows: make([]warehouse.Calendario, 0, len(dates)),
		keys: make(map[time.Time]int64, len(dates)),
	}

	for i, d := range dates {
		id := int64(i)
		_, week := d.ISOWeek()

		cal.rows = append(cal.rows, warehouse.Calendario{
			ID:        id,
			Data:      d,
			Ano:       d.Year(),
			Mes:       int(d.Month()),
			Dia:       d.Day(),
			NomeMes:   d.Month().String(),
			Semana:    week,
			Trimestre: (int(d.Month())-1)/3 + 1,
		})
		cal.keys[d] = id
	}

	return cal
}

// Rows returns the d_calendario rows in surrogate-key order.
func (c *Calendar) Rows() []warehouse.Calendario {
	return c.rows
}

// Ref resolves a parsed date to its surrogate key, nil when the date is not
// in the calendar. It never invents a key.
func (c *Calendar) Ref(t *time.Time) *int64 {
	if t == nil {
		return nil
	}

	id, ok := c.keys[dateOnly(*t)]
	if !ok {
		return nil
	}

	return &id
}

// RefRaw parses a raw source value and resolves it in one step. Null and
// unparseable values resolve to nil.
func (c *Calendar) RefRaw(s *string) *int64 {
	return c.Ref(parseDate(s))
}

// parseDate parses a nullable raw value to a nullable date, per fact-builder
// contract: invalid input becomes nil, never an error.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}

	t, ok := ParseDateTime(*s)
	if !ok {
		return nil
	}

	d := dateOnly(t)

	return &d
}

// collectDates gathers every date/time-bearing column across all extracted
// row sets: the order date, the four account date roles and the five
// negotiation date/time roles.
func collectDates(ex *Extraction) []*string {
	var values []*string

	for i := range ex.Itens {
		values = append(values, ex.Itens[i].DataPedido)
	}

	for i := range ex.Contas {
		c := &ex.Contas[i]
		values = append(values, c.DataPagamento, c.DataVencimento, c.DataEmissao, c.DataRenegociacao)
	}

	for i := range ex.Negociacoes {
		n := &ex.Negociacoes[i]
		values = append(values,
			n.DataInicio, n.DataFechamento, n.DataFechamentoEsperada,
			n.HorarioInicial, n.HorarioFinal,
		)
	}

	return values
}
