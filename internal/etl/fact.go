package etl

import "github.com/inflybi/warehouse/internal/warehouse"

// Fact builders share one contract: rename source columns to the fact schema,
// parse every date role (invalid values become nil, the row is kept), resolve
// each role through the calendar (a miss becomes nil, never a synthetic key)
// and project the target column list.

// BuildPedidoItens builds the order-item fact. One output row per source
// (order, item) pair; the order total stays duplicated across the order's
// item rows.
func BuildPedidoItens(rows []OrderItemRow, cal *Calendar) []warehouse.PedidoItem {
	out := make([]warehouse.PedidoItem, len(rows))
	for i, r := range rows {
		data := parseDate(r.DataPedido)

		out[i] = warehouse.PedidoItem{
			ID:                  r.IDItemPedido,
			IDPedido:            r.IDPedido,
			DataPedido:          data,
			IDCliente:           r.IDCliente,
			IDVendedor:          r.IDVendedor,
			IDProduto:           r.IDProduto,
			IDCondicaoPagamento: r.IDCondicaoPagamento,
			QuantidadePedida:    r.QuantidadeProduto,
			TipoPedido:          r.TipoPedido,
			IDCalendario:        cal.Ref(data),
			ValorProduto:        r.ValorProduto,
			ValorTotalPedido:    r.ValorTotalPedido,
		}
	}

	return out
}

// BuildContas builds the account fact. The three date roles resolve
// independently; a nil payment reference is the downstream signal for an
// unpaid account.
func BuildContas(rows []AccountRow, cal *Calendar) []warehouse.Conta {
	out := make([]warehouse.Conta, len(rows))
	for i, r := range rows {
		out[i] = warehouse.Conta{
			ID:                     r.ID,
			IDPessoa:               r.IDPessoa,
			IDPedidoVenda:          r.IDPedidoVenda,
			CategoriaConta:         r.CategoriaConta,
			FormaPagamento:         r.FormaPagamento,
			GatewayPagamento:       r.GatewayPagamento,
			TipoConta:              r.TipoConta,
			IDCalendarioPagamento:  cal.RefRaw(r.DataPagamento),
			IDCalendarioVencimento: cal.RefRaw(r.DataVencimento),
			IDCalendarioEmissao:    cal.RefRaw(r.DataEmissao),
			Despesa:                r.Despesa,
			Parcela:                r.Parcela,
			Valor:                  r.Valor,
		}
	}

	return out
}

// BuildNegociacoes builds the negotiation fact: one row per
// (negotiation, activity, item) combination, five date/time roles each
// resolved to its own calendar reference.
func BuildNegociacoes(rows []NegotiationRow, cal *Calendar) []warehouse.Negociacao {
	out := make([]warehouse.Negociacao, len(rows))
	for i, r := range rows {
		out[i] = warehouse.Negociacao{
			ID:                          r.ID,
			IDCliente:                   r.IDCliente,
			IDVendedor:                  r.IDVendedor,
			IDProduto:                   r.IDProduto,
			AtividadeNegociacao:         r.AtividadeNegociacao,
			EtapaNegociacao:             r.EtapaNegociacao,
			OrigemContato:               r.OrigemContato,
			TipoAtividade:               r.TipoAtividade,
			QuantidadeProduto:           r.QuantidadeProduto,
			IDCalendarioInicio:          cal.RefRaw(r.DataInicio),
			IDCalendarioFechamento:      cal.RefRaw(r.DataFechamento),
			IDCalendarioFechamentoEsper: cal.RefRaw(r.DataFechamentoEsperada),
			IDHorarioInicial:            cal.RefRaw(r.HorarioInicial),
			IDHorarioFinal:              cal.RefRaw(r.HorarioFinal),
			ValorProduto:                r.ValorProduto,
		}
	}

	return out
}
