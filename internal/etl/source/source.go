// Package source implements the extraction side of the pipeline against the
// operational MySQL database. Each method runs one parameterless flattening
// query and returns the denormalized row set; any query or scan error aborts
// the run.
package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inflybi/warehouse/internal/etl"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const personQuery = `
	SELECT
		ps.id        AS id_pessoa,
		ps.nome      AS nome_pessoa,
		gp.nome      AS tipo_pessoa,
		ps.fone      AS fone,
		ps.email     AS email,
		ps.data_nasc AS data_nascimento,
		ps.sexo      AS sexo,
		tp.nome      AS tipo_cliente,
		cc.nome      AS categoria_cliente
	FROM pessoa AS ps
	LEFT JOIN tipo_cliente AS tp ON ps.tipo_cliente_id = tp.id
	LEFT JOIN categoria_cliente AS cc ON ps.categoria_cliente_id = cc.id
	LEFT JOIN pessoa_grupo AS pg ON pg.pessoa_id = ps.id
	JOIN grupo_pessoa AS gp ON gp.id = pg.grupo_pessoa_id AND gp.nome = ?
`

// Clients returns every person in the "Cliente" group with type and category
// labels flattened in.
func (s *Store) Clients(ctx context.Context) ([]etl.PersonRow, error) {
	return s.persons(ctx, "Cliente")
}

// Sellers returns every person in the "Vendedor" group; structurally the same
// projection as Clients.
func (s *Store) Sellers(ctx context.Context) ([]etl.PersonRow, error) {
	return s.persons(ctx, "Vendedor")
}

func (s *Store) persons(ctx context.Context, group string) ([]etl.PersonRow, error) {
	rows, err := s.db.QueryContext(ctx, personQuery, group)
	if err != nil {
		return nil, fmt.Errorf("querying %s persons: %w", group, err)
	}
	defer rows.Close()

	var out []etl.PersonRow

	for rows.Next() {
		var (
			r                       etl.PersonRow
			fone, email, nasc, sexo sql.NullString
			tipoCliente, categoria  sql.NullString
		)

		if err := rows.Scan(
			&r.ID, &r.Nome, &r.TipoPessoa, &fone, &email, &nasc, &sexo,
			&tipoCliente, &categoria,
		); err != nil {
			return nil, fmt.Errorf("scanning %s person: %w", group, err)
		}

		r.Fone = strPtr(fone)
		r.Email = strPtr(email)
		r.DataNascimento = strPtr(nasc)
		r.Sexo = strPtr(sexo)
		r.TipoCliente = strPtr(tipoCliente)
		r.CategoriaCliente = strPtr(categoria)

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s persons: %w", group, err)
	}

	return out, nil
}

const productQuery = `
	SELECT
		pr.id   AS id_produto,
		pr.nome AS nome_produto,
		fp.nome AS familia_produto
	FROM produto AS pr
	JOIN tipo_produto AS tp ON pr.tipo_produto_id = tp.id AND tp.nome = 'Produto'
	LEFT JOIN familia_produto AS fp ON pr.familia_produto_id = fp.id
`

func (s *Store) Products(ctx context.Context) ([]etl.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, productQuery)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var out []etl.ProductRow

	for rows.Next() {
		var (
			r       etl.ProductRow
			familia sql.NullString
		)

		if err := rows.Scan(&r.ID, &r.Nome, &familia); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		r.FamiliaProduto = strPtr(familia)

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return out, nil
}

const orderItemQuery = `
	SELECT
		pv.id                    AS id_pedido,
		pvi.id                   AS id_item_pedido,
		tp.nome                  AS tipo_pedido,
		pv.cliente_id            AS id_cliente,
		pv.vendedor_id           AS id_vendedor,
		pv.condicao_pagamento_id AS id_condicao_pagamento,
		pv.dt_pedido             AS data_pedido,
		pv.valor_total           AS valor_total_pedido,
		pvi.produto_id           AS id_produto,
		pvi.quantidade           AS quantidade_produto,
		pvi.valor                AS valor_produto
	FROM pedido_venda AS pv
	LEFT JOIN pedido_venda_item AS pvi ON pv.id = pvi.pedido_venda_id
	LEFT JOIN tipo_pedido AS tp ON pv.tipo_pedido_id = tp.id
`

// OrderItems returns one row per (order, item) pair. Orders without items
// still produce a row with null item columns.
func (s *Store) OrderItems(ctx context.Context) ([]etl.OrderItemRow, error) {
	rows, err := s.db.QueryContext(ctx, orderItemQuery)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var out []etl.OrderItemRow

	for rows.Next() {
		var (
			r                         etl.OrderItemRow
			itemID, cliente, vendedor sql.NullInt64
			condicao, produto         sql.NullInt64
			tipo, data                sql.NullString
			total, qtd, valor         sql.NullFloat64
		)

		if err := rows.Scan(
			&r.IDPedido, &itemID, &tipo, &cliente, &vendedor, &condicao,
			&data, &total, &produto, &qtd, &valor,
		); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		r.IDItemPedido = intPtr(itemID)
		r.TipoPedido = strPtr(tipo)
		r.IDCliente = intPtr(cliente)
		r.IDVendedor = intPtr(vendedor)
		r.IDCondicaoPagamento = intPtr(condicao)
		r.DataPedido = strPtr(data)
		r.ValorTotalPedido = floatPtr(total)
		r.IDProduto = intPtr(produto)
		r.QuantidadeProduto = floatPtr(qtd)
		r.ValorProduto = floatPtr(valor)

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return out, nil
}

const accountQuery = `
	SELECT
		co.id              AS id_conta,
		co.pessoa_id       AS id_pessoa,
		co.despesa         AS despesa,
		tpc.nome           AS tipo_conta,
		ca.nome            AS categoria_conta,
		fp.nome            AS forma_pagamento,
		co.pedido_venda_id AS id_pedido_venda,
		gt.nome            AS gateway_pagamento,
		co.dt_vencimento   AS data_vencimento,
		co.dt_emissao      AS data_emissao,
		co.dt_pagamento    AS data_pagamento,
		co.dt_renegociacao AS data_renegociacao,
		co.parcela         AS parcela,
		co.ano_mes_emissao    AS ano_mes_emissao,
		co.ano_mes_vencimento AS ano_mes_vencimento,
		co.ano_mes_pagamento  AS ano_mes_pagamento,
		co.valor           AS valor
	FROM conta AS co
	LEFT JOIN categoria AS ca ON co.categoria_id = ca.id
	LEFT JOIN tipo_conta AS tpc ON ca.tipo_conta_id = tpc.id
	LEFT JOIN forma_pagamento AS fp ON co.forma_pagamento_id = fp.id
	LEFT JOIN gateway_pagamento AS gt ON co.gateway_pagamento_id = gt.id
`

func (s *Store) Accounts(ctx context.Context) ([]etl.AccountRow, error) {
	rows, err := s.db.QueryContext(ctx, accountQuery)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []etl.AccountRow

	for rows.Next() {
		var (
			r                             etl.AccountRow
			pessoa, pedido                sql.NullInt64
			despesa, tipoConta, categoria sql.NullString
			forma, gateway                sql.NullString
			venc, emissao, pgto, reneg    sql.NullString
			amEmissao, amVenc, amPgto     sql.NullString
			parcela, valor                sql.NullFloat64
		)

		if err := rows.Scan(
			&r.ID, &pessoa, &despesa, &tipoConta, &categoria, &forma,
			&pedido, &gateway, &venc, &emissao, &pgto, &reneg,
			&parcela, &amEmissao, &amVenc, &amPgto, &valor,
		); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		r.IDPessoa = intPtr(pessoa)
		r.Despesa = strPtr(despesa)
		r.TipoConta = strPtr(tipoConta)
		r.CategoriaConta = strPtr(categoria)
		r.FormaPagamento = strPtr(forma)
		r.IDPedidoVenda = intPtr(pedido)
		r.GatewayPagamento = strPtr(gateway)
		r.DataVencimento = strPtr(venc)
		r.DataEmissao = strPtr(emissao)
		r.DataPagamento = strPtr(pgto)
		r.DataRenegociacao = strPtr(reneg)
		r.Parcela = floatPtr(parcela)
		r.AnoMesEmissao = strPtr(amEmissao)
		r.AnoMesVencimento = strPtr(amVenc)
		r.AnoMesPagamento = strPtr(amPgto)
		r.Valor = floatPtr(valor)

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return out, nil
}

const negotiationQuery = `
	SELECT
		ng.id                       AS id_negociacao,
		ng.cliente_id               AS id_cliente,
		ng.vendedor_id              AS id_vendedor,
		ng.data_inicio              AS data_inicio,
		ng.data_fechamento          AS data_fechamento,
		ng.data_fechamento_esperada AS data_fechamento_esperada,
		oc.nome                     AS origem_contato,
		en.nome                     AS etapa_negociacao,
		na.descricao                AS atividade_negociacao,
		na.horario_inicial          AS horario_inicial,
		na.horario_final            AS horario_final,
		ta.nome                     AS tipo_atividade,
		ni.produto_id               AS id_produto,
		ni.quantidade               AS quantidade_produto,
		ni.valor                    AS valor_produto
	FROM negociacao AS ng
	LEFT JOIN origem_contato AS oc ON ng.origem_contato_id = oc.id
	LEFT JOIN etapa_negociacao AS en ON ng.etapa_negociacao_id = en.id
	LEFT JOIN negociacao_atividade AS na ON ng.id = na.negociacao_id
	LEFT JOIN tipo_atividade AS ta ON na.tipo_atividade_id = ta.id
	LEFT JOIN negociacao_item AS ni ON ng.id = ni.negociacao_id
`

// Negotiations returns one row per (negotiation, activity, item) combination
// from the multi-way left join.
func (s *Store) Negotiations(ctx context.Context) ([]etl.NegotiationRow, error) {
	rows, err := s.db.QueryContext(ctx, negotiationQuery)
	if err != nil {
		return nil, fmt.Errorf("querying negotiations: %w", err)
	}
	defer rows.Close()

	var out []etl.NegotiationRow

	for rows.Next() {
		var (
			r                         etl.NegotiationRow
			cliente, vendedor, prod   sql.NullInt64
			inicio, fech, fechEsp     sql.NullString
			origem, etapa, atividade  sql.NullString
			horaIni, horaFim, tipoAtv sql.NullString
			qtd, valor                sql.NullFloat64
		)

		if err := rows.Scan(
			&r.ID, &cliente, &vendedor, &inicio, &fech, &fechEsp,
			&origem, &etapa, &atividade, &horaIni, &horaFim, &tipoAtv,
			&prod, &qtd, &valor,
		); err != nil {
			return nil, fmt.Errorf("scanning negotiation: %w", err)
		}

		r.IDCliente = intPtr(cliente)
		r.IDVendedor = intPtr(vendedor)
		r.DataInicio = strPtr(inicio)
		r.DataFechamento = strPtr(fech)
		r.DataFechamentoEsperada = strPtr(fechEsp)
		r.OrigemContato = strPtr(origem)
		r.EtapaNegociacao = strPtr(etapa)
		r.AtividadeNegociacao = strPtr(atividade)
		r.HorarioInicial = strPtr(horaIni)
		r.HorarioFinal = strPtr(horaFim)
		r.TipoAtividade = strPtr(tipoAtv)
		r.IDProduto = intPtr(prod)
		r.QuantidadeProduto = floatPtr(qtd)
		r.ValorProduto = floatPtr(valor)

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating negotiations: %w", err)
	}

	return out, nil
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	return &v.String
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}

	return &v.Int64
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}

	return &v.Float64
}
