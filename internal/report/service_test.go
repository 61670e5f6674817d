package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now: func() time.Time {
			return time.Date(2024, 6, 18, 15, 30, 0, 0, time.UTC)
		},
	}
}

func TestService_WindowStart(t *testing.T) {
	svc := newTestService(nil)

	// Anchored on the first of the current month, 30 days per window month.
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), svc.windowStart(3))
	assert.Equal(t, time.Date(2023, 12, 4, 0, 0, 0, 0, time.UTC), svc.windowStart(6))
	assert.Equal(t, time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC), svc.windowStart(12))
}

func TestService_LeadOrigins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := newTestService(repo)

	want := []LeadOrigin{
		{Origem: "Instagram", Quantidade: 12},
		{Origem: "Não especificado", Quantidade: 3},
	}

	repo.EXPECT().
		LeadOrigins(gomock.Any(), time.Date(2023, 12, 4, 0, 0, 0, 0, time.UTC)).
		Return(want, nil)

	got, err := svc.LeadOrigins(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Enrollments(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := newTestService(repo)

	since := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().LeadsByMonth(gomock.Any(), since).Return([]MonthlyCount{
		{Ano: 2024, Mes: 4, NomeMes: "April", Total: 20},
		{Ano: 2024, Mes: 5, NomeMes: "May", Total: 15},
	}, nil)
	repo.EXPECT().EnrollmentsByMonth(gomock.Any(), since).Return([]MonthlyCount{
		{Ano: 2024, Mes: 4, NomeMes: "April", Total: 5},
		{Ano: 2024, Mes: 6, NomeMes: "June", Total: 2},
	}, nil)

	got, err := svc.Enrollments(context.Background(), 3)
	require.NoError(t, err)

	// Enrollment months drive the series; June had no lead entry.
	assert.Equal(t, []Funnel{
		{Ano: 2024, Mes: 4, NomeMes: "April", TotalLeads: 20, TotalMatriculas: 5},
		{Ano: 2024, Mes: 6, NomeMes: "June", TotalLeads: 0, TotalMatriculas: 2},
	}, got)
}

func TestService_Conversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().LeadsByMonth(gomock.Any(), gomock.Any()).Return([]MonthlyCount{
		{Ano: 2024, Mes: 4, NomeMes: "April", Total: 3},
	}, nil)
	repo.EXPECT().EnrollmentsByMonth(gomock.Any(), gomock.Any()).Return([]MonthlyCount{
		{Ano: 2024, Mes: 4, NomeMes: "April", Total: 1},
		{Ano: 2024, Mes: 5, NomeMes: "May", Total: 2},
	}, nil)

	got, err := svc.Conversion(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// 1/3 rounds to 33.33 percent; a month without leads stays at zero.
	assert.Equal(t, 33.33, got[0].TaxaConversao)
	assert.Equal(t, 0.0, got[1].TaxaConversao)
}

func TestService_Delinquency(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().DelinquencyByMonth(gomock.Any(), gomock.Any()).Return([]DelinquencyTotals{
		{Ano: 2024, Mes: 5, NomeMes: "May", ValorTotal: 1000, ReceitaTotal: 800, ValorInadimplente: 200},
		{Ano: 2024, Mes: 6, NomeMes: "June", ValorTotal: 0, ReceitaTotal: 0, ValorInadimplente: 0},
	}, nil)

	got, err := svc.Delinquency(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 20.0, got[0].TaxaInadimplencia)
	assert.Equal(t, 80.0, got[0].PercentualPagas)

	// No billed value means no rates, not a division by zero.
	assert.Equal(t, 0.0, got[1].TaxaInadimplencia)
	assert.Equal(t, 0.0, got[1].PercentualPagas)
}

func TestService_RepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := newTestService(repo)

	repo.EXPECT().LeadsByMonth(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := svc.Enrollments(context.Background(), 6)
	assert.ErrorIs(t, err, assert.AnError)
}
