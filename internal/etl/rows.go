package etl

// Source row shapes, one struct per extraction query. Date and time columns
// arrive as raw strings: parsing them is the transform's job, and a value the
// permissive parser rejects must mark the cell, not fail the extraction.

// PersonRow is one person flattened with its group, type and category labels.
// The same shape backs both the client and the seller extraction; only the
// group filter differs.
type PersonRow struct {
	ID               int64
	Nome             string
	TipoPessoa       string
	Fone             *string
	Email            *string
	DataNascimento   *string
	Sexo             *string
	TipoCliente      *string
	CategoriaCliente *string
}

// ProductRow is one product with its family label.
type ProductRow struct {
	ID             int64
	Nome           string
	FamiliaProduto *string
}

// OrderItemRow is one (order, item) pair: order columns repeat across the
// order's items, item columns are null for an order without items.
type OrderItemRow struct {
	IDPedido            int64
	IDItemPedido        *int64
	TipoPedido          *string
	IDCliente           *int64
	IDVendedor          *int64
	IDCondicaoPagamento *int64
	DataPedido          *string
	ValorTotalPedido    *float64
	IDProduto           *int64
	QuantidadeProduto   *float64
	ValorProduto        *float64
}

// AccountRow is one receivable/payable with its classification labels and
// four raw date columns (due, issued, paid, renegotiated).
type AccountRow struct {
	ID               int64
	IDPessoa         *int64
	Despesa          *string
	TipoConta        *string
	CategoriaConta   *string
	FormaPagamento   *string
	IDPedidoVenda    *int64
	GatewayPagamento *string
	DataVencimento   *string
	DataEmissao      *string
	DataPagamento    *string
	DataRenegociacao *string
	Parcela          *float64
	AnoMesEmissao    *string
	AnoMesVencimento *string
	AnoMesPagamento  *string
	Valor            *float64
}

// NegotiationRow is one (negotiation, activity, item) combination from the
// multi-way left join; negotiation columns repeat across activities and items.
type NegotiationRow struct {
	ID                     int64
	IDCliente              *int64
	IDVendedor             *int64
	DataInicio             *string
	DataFechamento         *string
	DataFechamentoEsperada *string
	OrigemContato          *string
	EtapaNegociacao        *string
	AtividadeNegociacao    *string
	HorarioInicial         *string
	HorarioFinal           *string
	TipoAtividade          *string
	IDProduto              *int64
	QuantidadeProduto      *float64
	ValorProduto           *float64
}

// Extraction bundles the six row sets of one pipeline run. The calendar is
// built from every date column across all of them, so extraction must be
// complete before any transformation starts.
type Extraction struct {
	Clientes    []PersonRow
	Vendedores  []PersonRow
	Produtos    []ProductRow
	Itens       []OrderItemRow
	Contas      []AccountRow
	Negociacoes []NegotiationRow
}
