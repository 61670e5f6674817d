package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inflybi/warehouse/internal/report"
	"github.com/inflybi/warehouse/internal/report/store"
)

var since = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStore_LeadOrigins(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"origem", "quantidade"}).
		AddRow("Instagram", 12).
		AddRow("Não especificado", 3)

	mock.ExpectQuery("FROM f_negociacao").
		WithArgs(since, sqlmock.AnyArg()).
		WillReturnRows(rows)

	got, err := store.New(db).LeadOrigins(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []report.LeadOrigin{
		{Origem: "Instagram", Quantidade: 12},
		{Origem: "Não especificado", Quantidade: 3},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LeadsByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"ano", "mes", "nome_mes", "total"}).
		AddRow(2024, 1, "January", 20).
		AddRow(2024, 2, "February", 15)

	mock.ExpectQuery("COUNT\\(DISTINCT n.id_cliente\\)").
		WithArgs(since).
		WillReturnRows(rows)

	got, err := store.New(db).LeadsByMonth(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, report.MonthlyCount{Ano: 2024, Mes: 1, NomeMes: "January", Total: 20}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_EnrollmentsByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"ano", "mes", "nome_mes", "total"}).
		AddRow(2024, 2, "February", 4)

	mock.ExpectQuery("etapa_negociacao").
		WithArgs(since).
		WillReturnRows(rows)

	got, err := store.New(db).EnrollmentsByMonth(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []report.MonthlyCount{
		{Ano: 2024, Mes: 2, NomeMes: "February", Total: 4},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DelinquencyByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"ano", "mes", "nome_mes", "valor_total", "receita_total", "valor_inadimplente",
	}).AddRow(2024, 3, "March", 1000.0, 800.0, 200.0)

	mock.ExpectQuery("FROM f_conta").
		WithArgs(since).
		WillReturnRows(rows)

	got, err := store.New(db).DelinquencyByMonth(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []report.DelinquencyTotals{
		{Ano: 2024, Mes: 3, NomeMes: "March", ValorTotal: 1000, ReceitaTotal: 800, ValorInadimplente: 200},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM f_conta").WillReturnError(assert.AnError)

	_, err = store.New(db).DelinquencyByMonth(context.Background(), since)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying delinquency by month")
}
