// Package load implements the warehouse side of the pipeline: a destructive
// full replace of the eight destination tables. The whole load runs inside
// one transaction, so a failure mid-load leaves the previous warehouse state
// intact instead of a mixed old/new one.
package load

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inflybi/warehouse/internal/warehouse"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Replace drops and recreates every destination table with the new run's
// rows. Dimensions load before facts and facts before the bridge so the
// calendar foreign keys hold at insert time.
func (s *Store) Replace(ctx context.Context, tables *warehouse.Tables) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		name string
		fn   func(context.Context, *sql.Tx, *warehouse.Tables) error
	}{
		{"d_cliente", replaceClientes},
		{"d_produto", replaceProdutos},
		{"d_vendedor", replaceVendedores},
		{"d_calendario", replaceCalendario},
		{"f_pedido_item", replacePedidoItens},
		{"f_conta", replaceContas},
		{"f_negociacao", replaceNegociacoes},
		{"bridge_pedido_produto", replaceBridge},
	}

	for _, step := range steps {
		if err := step.fn(ctx, tx, tables); err != nil {
			return fmt.Errorf("replacing %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load: %w", err)
	}

	return nil
}

func recreate(ctx context.Context, tx *sql.Tx, table, ddl string) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
		return fmt.Errorf("dropping: %w", err)
	}

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating: %w", err)
	}

	return nil
}

func replaceClientes(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE d_cliente (
		id BIGINT PRIMARY KEY,
		nome TEXT NOT NULL,
		tipo_pessoa TEXT NOT NULL,
		tipo_cliente TEXT,
		email TEXT,
		fone TEXT,
		sexo TEXT,
		categoria TEXT,
		data_nascimento DATE
	)`
	if err := recreate(ctx, tx, "d_cliente", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO d_cliente
		(id, nome, tipo_pessoa, tipo_cliente, email, fone, sexo, categoria, data_nascimento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Clientes {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Nome, r.TipoPessoa, r.TipoCliente, r.Email, r.Fone,
			r.Sexo, r.Categoria, r.DataNascimento,
		); err != nil {
			return fmt.Errorf("inserting client %d: %w", r.ID, err)
		}
	}

	return nil
}

func replaceProdutos(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE d_produto (
		id BIGINT PRIMARY KEY,
		nome TEXT NOT NULL,
		familia_produto TEXT
	)`
	if err := recreate(ctx, tx, "d_produto", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO d_produto (id, nome, familia_produto) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Produtos {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Nome, r.FamiliaProduto); err != nil {
			return fmt.Errorf("inserting product %d: %w", r.ID, err)
		}
	}

	return nil
}

func replaceVendedores(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE d_vendedor (
		id BIGINT PRIMARY KEY,
		nome TEXT NOT NULL,
		email TEXT,
		fone TEXT,
		tipo TEXT NOT NULL,
		categoria TEXT,
		data_nasc DATE
	)`
	if err := recreate(ctx, tx, "d_vendedor", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO d_vendedor
		(id, nome, email, fone, tipo, categoria, data_nasc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Vendedores {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Nome, r.Email, r.Fone, r.Tipo, r.Categoria, r.DataNasc,
		); err != nil {
			return fmt.Errorf("inserting seller %d: %w", r.ID, err)
		}
	}

	return nil
}

func replaceCalendario(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE d_calendario (
		id BIGINT PRIMARY KEY,
		data DATE NOT NULL,
		ano INTEGER NOT NULL,
		mes INTEGER NOT NULL,
		dia INTEGER NOT NULL,
		nome_mes TEXT NOT NULL,
		semana INTEGER NOT NULL,
		trimestre INTEGER NOT NULL
	)`
	if err := recreate(ctx, tx, "d_calendario", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO d_calendario
		(id, data, ano, mes, dia, nome_mes, semana, trimestre)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Calendario {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Data, r.Ano, r.Mes, r.Dia, r.NomeMes, r.Semana, r.Trimestre,
		); err != nil {
			return fmt.Errorf("inserting calendar day %s: %w", r.Data.Format("2006-01-02"), err)
		}
	}

	return nil
}

func replacePedidoItens(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE f_pedido_item (
		id BIGINT,
		id_pedido BIGINT NOT NULL,
		data_pedido DATE,
		id_cliente BIGINT,
		id_vendedor BIGINT,
		id_produto BIGINT,
		id_condicao_pagamento BIGINT,
		quantidade_pedida DOUBLE PRECISION,
		tipo_pedido TEXT,
		id_calendario BIGINT REFERENCES d_calendario (id),
		valor_produto DOUBLE PRECISION,
		valor_total_pedido DOUBLE PRECISION
	)`
	if err := recreate(ctx, tx, "f_pedido_item", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO f_pedido_item
		(id, id_pedido, data_pedido, id_cliente, id_vendedor, id_produto,
		 id_condicao_pagamento, quantidade_pedida, tipo_pedido, id_calendario,
		 valor_produto, valor_total_pedido)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.PedidoItens {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.IDPedido, r.DataPedido, r.IDCliente, r.IDVendedor,
			r.IDProduto, r.IDCondicaoPagamento, r.QuantidadePedida,
			r.TipoPedido, r.IDCalendario, r.ValorProduto, r.ValorTotalPedido,
		); err != nil {
			return fmt.Errorf("inserting order item for order %d: %w", r.IDPedido, err)
		}
	}

	return nil
}

func replaceContas(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE f_conta (
		id BIGINT PRIMARY KEY,
		id_pessoa BIGINT,
		id_pedido_venda BIGINT,
		categoria_conta TEXT,
		forma_pagamento TEXT,
		gateway_pagamento TEXT,
		tipo_conta TEXT,
		id_calendario_pagamento BIGINT REFERENCES d_calendario (id),
		id_calendario_vencimento BIGINT REFERENCES d_calendario (id),
		id_calendario_emissao BIGINT REFERENCES d_calendario (id),
		despesa TEXT,
		parcela DOUBLE PRECISION,
		valor DOUBLE PRECISION
	)`
	if err := recreate(ctx, tx, "f_conta", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO f_conta
		(id, id_pessoa, id_pedido_venda, categoria_conta, forma_pagamento,
		 gateway_pagamento, tipo_conta, id_calendario_pagamento,
		 id_calendario_vencimento, id_calendario_emissao, despesa, parcela, valor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Contas {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.IDPessoa, r.IDPedidoVenda, r.CategoriaConta,
			r.FormaPagamento, r.GatewayPagamento, r.TipoConta,
			r.IDCalendarioPagamento, r.IDCalendarioVencimento,
			r.IDCalendarioEmissao, r.Despesa, r.Parcela, r.Valor,
		); err != nil {
			return fmt.Errorf("inserting account %d: %w", r.ID, err)
		}
	}

	return nil
}

func replaceNegociacoes(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE f_negociacao (
		id BIGINT,
		id_cliente BIGINT,
		id_vendedor BIGINT,
		id_produto BIGINT,
		atividade_negociacao TEXT,
		etapa_negociacao TEXT,
		origem_contato TEXT,
		tipo_atividade TEXT,
		quantidade_produto DOUBLE PRECISION,
		id_calendario_inicio BIGINT REFERENCES d_calendario (id),
		id_calendario_fechamento BIGINT REFERENCES d_calendario (id),
		id_calendario_fechamento_esperada BIGINT REFERENCES d_calendario (id),
		id_horario_inicial BIGINT REFERENCES d_calendario (id),
		id_horario_final BIGINT REFERENCES d_calendario (id),
		valor_produto DOUBLE PRECISION
	)`
	if err := recreate(ctx, tx, "f_negociacao", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO f_negociacao
		(id, id_cliente, id_vendedor, id_produto, atividade_negociacao,
		 etapa_negociacao, origem_contato, tipo_atividade, quantidade_produto,
		 id_calendario_inicio, id_calendario_fechamento,
		 id_calendario_fechamento_esperada, id_horario_inicial,
		 id_horario_final, valor_produto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Negociacoes {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.IDCliente, r.IDVendedor, r.IDProduto,
			r.AtividadeNegociacao, r.EtapaNegociacao, r.OrigemContato,
			r.TipoAtividade, r.QuantidadeProduto, r.IDCalendarioInicio,
			r.IDCalendarioFechamento, r.IDCalendarioFechamentoEsper,
			r.IDHorarioInicial, r.IDHorarioFinal, r.ValorProduto,
		); err != nil {
			return fmt.Errorf("inserting negotiation %d: %w", r.ID, err)
		}
	}

	return nil
}

func replaceBridge(ctx context.Context, tx *sql.Tx, t *warehouse.Tables) error {
	ddl := `CREATE TABLE bridge_pedido_produto (
		id BIGINT PRIMARY KEY,
		id_pedido BIGINT NOT NULL,
		id_produto BIGINT NOT NULL,
		UNIQUE (id_pedido, id_produto)
	)`
	if err := recreate(ctx, tx, "bridge_pedido_produto", ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO bridge_pedido_produto (id, id_pedido, id_produto) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.PedidoProdutos {
		if _, err := stmt.ExecContext(ctx, r.ID, r.IDPedido, r.IDProduto); err != nil {
			return fmt.Errorf("inserting bridge row %d: %w", r.ID, err)
		}
	}

	return nil
}
