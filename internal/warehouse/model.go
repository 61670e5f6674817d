// Package warehouse defines the star-schema row types loaded into the
// analytical store. Column names and order are a binding contract with the
// reporting queries, so field order mirrors the physical tables.
package warehouse

import "time"

// Cliente is a row of the d_cliente dimension.
type Cliente struct {
	ID             int64
	Nome           string
	TipoPessoa     string
	TipoCliente    *string
	Email          *string
	Fone           *string
	Sexo           *string
	Categoria      *string
	DataNascimento *time.Time
}

// Produto is a row of the d_produto dimension.
type Produto struct {
	ID             int64
	Nome           string
	FamiliaProduto *string
}

// Vendedor is a row of the d_vendedor dimension.
type Vendedor struct {
	ID        int64
	Nome      string
	Email     *string
	Fone      *string
	Tipo      string
	Categoria *string
	DataNasc  *time.Time
}

// Calendario is a row of the shared d_calendario dimension. It serves both
// date roles and time-of-day roles: activity start/end times resolve to the
// same table, normalized to date granularity.
type Calendario struct {
	ID        int64
	Data      time.Time
	Ano       int
	Mes       int
	Dia       int
	NomeMes   string
	Semana    int
	Trimestre int
}

// PedidoItem is a row of the f_pedido_item fact: one row per (order, item)
// pair, order-level columns duplicated across the order's item rows.
type PedidoItem struct {
	ID                  *int64
	IDPedido            int64
	DataPedido          *time.Time
	IDCliente           *int64
	IDVendedor          *int64
	IDProduto           *int64
	IDCondicaoPagamento *int64
	QuantidadePedida    *float64
	TipoPedido          *string
	IDCalendario        *int64
	ValorProduto        *float64
	ValorTotalPedido    *float64
}

// Conta is a row of the f_conta fact. A nil IDCalendarioPagamento marks an
// unpaid account; the delinquency report depends on that signal.
type Conta struct {
	ID                     int64
	IDPessoa               *int64
	IDPedidoVenda          *int64
	CategoriaConta         *string
	FormaPagamento         *string
	GatewayPagamento       *string
	TipoConta              *string
	IDCalendarioPagamento  *int64
	IDCalendarioVencimento *int64
	IDCalendarioEmissao    *int64
	Despesa                *string
	Parcela                *float64
	Valor                  *float64
}

// Negociacao is a row of the f_negociacao fact: one row per
// (negotiation, activity, item) combination from the source left joins.
type Negociacao struct {
	ID                          int64
	IDCliente                   *int64
	IDVendedor                  *int64
	IDProduto                   *int64
	AtividadeNegociacao         *string
	EtapaNegociacao             *string
	OrigemContato               *string
	TipoAtividade               *string
	QuantidadeProduto           *float64
	IDCalendarioInicio          *int64
	IDCalendarioFechamento      *int64
	IDCalendarioFechamentoEsper *int64
	IDHorarioInicial            *int64
	IDHorarioFinal              *int64
	ValorProduto                *float64
}

// PedidoProduto is a row of the bridge_pedido_produto table: one row per
// distinct (order, product) pair seen in the order-item fact.
type PedidoProduto struct {
	ID        int64
	IDPedido  int64
	IDProduto int64
}

// Tables holds one fully materialized run of the warehouse, ready to load.
type Tables struct {
	Clientes       []Cliente
	Produtos       []Produto
	Vendedores     []Vendedor
	Calendario     []Calendario
	PedidoItens    []PedidoItem
	Contas         []Conta
	Negociacoes    []Negociacao
	PedidoProdutos []PedidoProduto
}
