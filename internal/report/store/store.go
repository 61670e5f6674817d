package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/inflybi/warehouse/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LeadOrigins(ctx context.Context, since time.Time) ([]report.LeadOrigin, error) {
	query := `
		SELECT COALESCE(n.origem_contato, 'Não especificado') AS origem,
		       COUNT(DISTINCT n.id) AS quantidade
		FROM f_negociacao n
		JOIN d_calendario c ON c.id = n.id_calendario_inicio
		WHERE c.data >= $1 AND c.data <= $2
		GROUP BY COALESCE(n.origem_contato, 'Não especificado')
		ORDER BY COUNT(n.id) DESC`

	rows, err := s.db.QueryContext(ctx, query, since, time.Now())
	if err != nil {
		return nil, fmt.Errorf("querying lead origins: %w", err)
	}
	defer rows.Close()

	var out []report.LeadOrigin

	for rows.Next() {
		var lo report.LeadOrigin
		if err := rows.Scan(&lo.Origem, &lo.Quantidade); err != nil {
			return nil, fmt.Errorf("scanning lead origin: %w", err)
		}

		out = append(out, lo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead origins: %w", err)
	}

	return out, nil
}

func (s *Store) LeadsByMonth(ctx context.Context, since time.Time) ([]report.MonthlyCount, error) {
	query := `
		SELECT c.ano, c.mes, c.nome_mes,
		       COUNT(DISTINCT n.id_cliente) AS total
		FROM f_negociacao n
		JOIN d_calendario c ON c.id = n.id_calendario_inicio
		WHERE c.data >= $1
		GROUP BY c.ano, c.mes, c.nome_mes
		ORDER BY c.ano ASC, c.mes ASC`

	return s.monthlyCounts(ctx, query, "leads", since)
}

func (s *Store) EnrollmentsByMonth(ctx context.Context, since time.Time) ([]report.MonthlyCount, error) {
	query := `
		SELECT c.ano, c.mes, c.nome_mes,
		       COUNT(n.id) AS total
		FROM f_negociacao n
		JOIN d_calendario c ON c.id = n.id_calendario_inicio
		WHERE c.data >= $1
		  AND (n.etapa_negociacao LIKE 'NEGOCIA%' OR n.etapa_negociacao = 'MATRICULADO')
		GROUP BY c.ano, c.mes, c.nome_mes
		ORDER BY c.ano ASC, c.mes ASC`

	return s.monthlyCounts(ctx, query, "enrollments", since)
}

func (s *Store) monthlyCounts(ctx context.Context, query, what string, since time.Time) ([]report.MonthlyCount, error) {
	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("querying %s by month: %w", what, err)
	}
	defer rows.Close()

	var out []report.MonthlyCount

	for rows.Next() {
		var mc report.MonthlyCount
		if err := rows.Scan(&mc.Ano, &mc.Mes, &mc.NomeMes, &mc.Total); err != nil {
			return nil, fmt.Errorf("scanning %s by month: %w", what, err)
		}

		out = append(out, mc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s by month: %w", what, err)
	}

	return out, nil
}

// DelinquencyByMonth groups the account fact by due month. A null payment
// calendar reference is the unpaid signal the CASE expressions pivot on.
func (s *Store) DelinquencyByMonth(ctx context.Context, since time.Time) ([]report.DelinquencyTotals, error) {
	query := `
		SELECT c.ano, c.mes, c.nome_mes,
		       COALESCE(SUM(f.valor), 0) AS valor_total,
		       COALESCE(SUM(CASE WHEN f.id_calendario_pagamento IS NOT NULL THEN f.valor ELSE 0 END), 0) AS receita_total,
		       COALESCE(SUM(CASE WHEN f.id_calendario_pagamento IS NULL THEN f.valor ELSE 0 END), 0) AS valor_inadimplente
		FROM f_conta f
		JOIN d_calendario c ON c.id = f.id_calendario_vencimento
		WHERE c.data >= $1
		GROUP BY c.ano, c.mes, c.nome_mes
		ORDER BY c.ano ASC, c.mes ASC`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("querying delinquency by month: %w", err)
	}
	defer rows.Close()

	var out []report.DelinquencyTotals

	for rows.Next() {
		var dt report.DelinquencyTotals
		if err := rows.Scan(
			&dt.Ano, &dt.Mes, &dt.NomeMes,
			&dt.ValorTotal, &dt.ReceitaTotal, &dt.ValorInadimplente,
		); err != nil {
			return nil, fmt.Errorf("scanning delinquency by month: %w", err)
		}

		out = append(out, dt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating delinquency by month: %w", err)
	}

	return out, nil
}
