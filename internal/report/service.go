package report

import (
	"context"
	"math"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	LeadOrigins(ctx context.Context, since time.Time) ([]LeadOrigin, error)
	LeadsByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error)
	EnrollmentsByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error)
	DelinquencyByMonth(ctx context.Context, since time.Time) ([]DelinquencyTotals, error)
}

type Service struct {
	repo Repository

	// now is swappable for tests; the reporting window is anchored on it.
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// windowStart anchors an N-month window the way the dashboards expect it:
// the first day of the current month minus 30 days per month of window.
func (s *Service) windowStart(months int) time.Time {
	today := s.now()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	return first.AddDate(0, 0, -30*months)
}

// LeadOrigins reports how many negotiations each contact origin produced in
// the window, busiest origins first.
func (s *Service) LeadOrigins(ctx context.Context, months int) ([]LeadOrigin, error) {
	return s.repo.LeadOrigins(ctx, s.windowStart(months))
}

// Enrollments merges the monthly lead counts and enrollment counts into one
// funnel series, one entry per month that saw enrollments.
func (s *Service) Enrollments(ctx context.Context, months int) ([]Funnel, error) {
	since := s.windowStart(months)

	leads, err := s.repo.LeadsByMonth(ctx, since)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.repo.EnrollmentsByMonth(ctx, since)
	if err != nil {
		return nil, err
	}

	return mergeFunnel(leads, enrollments), nil
}

// Conversion is the funnel plus the enrollment conversion rate in percent,
// zero when a month had no leads.
func (s *Service) Conversion(ctx context.Context, months int) ([]Conversion, error) {
	funnel, err := s.Enrollments(ctx, months)
	if err != nil {
		return nil, err
	}

	out := make([]Conversion, len(funnel))
	for i, f := range funnel {
		c := Conversion{Funnel: f}
		if f.TotalLeads > 0 {
			c.TaxaConversao = round2(float64(f.TotalMatriculas) / float64(f.TotalLeads) * 100)
		}

		out[i] = c
	}

	return out, nil
}

// Delinquency derives the monthly delinquency and paid percentages from the
// account sums grouped by due month. An account is delinquent when its
// payment calendar reference is null.
func (s *Service) Delinquency(ctx context.Context, months int) ([]Delinquency, error) {
	totals, err := s.repo.DelinquencyByMonth(ctx, s.windowStart(months))
	if err != nil {
		return nil, err
	}

	out := make([]Delinquency, len(totals))
	for i, t := range totals {
		d := Delinquency{
			Ano:               t.Ano,
			Mes:               t.Mes,
			NomeMes:           t.NomeMes,
			ValorTotal:        t.ValorTotal,
			ReceitaTotal:      t.ReceitaTotal,
			ValorInadimplente: t.ValorInadimplente,
		}

		if t.ValorTotal > 0 {
			d.TaxaInadimplencia = round2(t.ValorInadimplente / t.ValorTotal * 100)
			d.PercentualPagas = round2(t.ReceitaTotal / t.ValorTotal * 100)
		}

		out[i] = d
	}

	return out, nil
}

// mergeFunnel joins the two monthly series on (year, month). Months with
// enrollments drive the output; a month with enrollments but no lead entry
// reports zero leads.
func mergeFunnel(leads, enrollments []MonthlyCount) []Funnel {
	type monthKey struct {
		ano int
		mes int
	}

	lookup := make(map[monthKey]int64, len(leads))
	for _, l := range leads {
		lookup[monthKey{ano: l.Ano, mes: l.Mes}] = l.Total
	}

	out := make([]Funnel, len(enrollments))
	for i, e := range enrollments {
		out[i] = Funnel{
			Ano:             e.Ano,
			Mes:             e.Mes,
			NomeMes:         e.NomeMes,
			TotalLeads:      lookup[monthKey{ano: e.Ano, mes: e.Mes}],
			TotalMatriculas: e.Total,
		}
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
