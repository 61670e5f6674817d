package etl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inflybi/warehouse/internal/warehouse"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=etl

// Source extracts the six flattened row sets from the operational store. Any
// query failure is fatal to the run; there is no partial extraction.
type Source interface {
	Clients(ctx context.Context) ([]PersonRow, error)
	Sellers(ctx context.Context) ([]PersonRow, error)
	Products(ctx context.Context) ([]ProductRow, error)
	OrderItems(ctx context.Context) ([]OrderItemRow, error)
	Accounts(ctx context.Context) ([]AccountRow, error)
	Negotiations(ctx context.Context) ([]NegotiationRow, error)
}

// Destination replaces the warehouse contents with one run's tables.
type Destination interface {
	Replace(ctx context.Context, tables *warehouse.Tables) error
}

type Service struct {
	src Source
	dst Destination
}

func NewService(src Source, dst Destination) *Service {
	return &Service{src: src, dst: dst}
}

// Run executes one full pipeline pass: extract everything, transform in
// memory, replace the warehouse. Strictly sequential; the first error aborts
// the run.
func (s *Service) Run(ctx context.Context) error {
	slog.Info("extracting source data")

	ex, err := s.extract(ctx)
	if err != nil {
		return err
	}

	slog.Info("extraction complete",
		"clients", len(ex.Clientes),
		"sellers", len(ex.Vendedores),
		"products", len(ex.Produtos),
		"order_items", len(ex.Itens),
		"accounts", len(ex.Contas),
		"negotiations", len(ex.Negociacoes),
	)

	slog.Info("transforming to star schema")

	tables := Transform(ex)

	slog.Info("transformation complete",
		"calendar_rows", len(tables.Calendario),
		"bridge_rows", len(tables.PedidoProdutos),
	)

	slog.Info("loading warehouse")

	if err := s.dst.Replace(ctx, tables); err != nil {
		return fmt.Errorf("loading warehouse: %w", err)
	}

	slog.Info("load complete")

	return nil
}

// extract pulls all six row sets, one at a time. The calendar depends on
// every row set's date columns, so nothing downstream starts until the whole
// extraction succeeded.
func (s *Service) extract(ctx context.Context) (*Extraction, error) {
	var (
		ex  Extraction
		err error
	)

	if ex.Clientes, err = s.src.Clients(ctx); err != nil {
		return nil, fmt.Errorf("extracting clients: %w", err)
	}

	if ex.Vendedores, err = s.src.Sellers(ctx); err != nil {
		return nil, fmt.Errorf("extracting sellers: %w", err)
	}

	if ex.Produtos, err = s.src.Products(ctx); err != nil {
		return nil, fmt.Errorf("extracting products: %w", err)
	}

	if ex.Itens, err = s.src.OrderItems(ctx); err != nil {
		return nil, fmt.Errorf("extracting order items: %w", err)
	}

	if ex.Contas, err = s.src.Accounts(ctx); err != nil {
		return nil, fmt.Errorf("extracting accounts: %w", err)
	}

	if ex.Negociacoes, err = s.src.Negotiations(ctx); err != nil {
		return nil, fmt.Errorf("extracting negotiations: %w", err)
	}

	return &ex, nil
}

// Transform reshapes one extraction into the eight warehouse tables. The
// calendar is built first and its lookup passed to every fact builder by
// parameter, never through shared state.
func Transform(ex *Extraction) *warehouse.Tables {
	cal := BuildCalendar(collectDates(ex))

	tables := &warehouse.Tables{
		Clientes:    ConformClientes(ex.Clientes),
		Produtos:    ConformProdutos(ex.Produtos),
		Vendedores:  ConformVendedores(ex.Vendedores),
		Calendario:  cal.Rows(),
		PedidoItens: BuildPedidoItens(ex.Itens, cal),
		Contas:      BuildContas(ex.Contas, cal),
		Negociacoes: BuildNegociacoes(ex.Negociacoes, cal),
	}

	tables.PedidoProdutos = BuildBridge(tables.PedidoItens)

	return tables
}
