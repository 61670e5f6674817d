package etl

import "github.com/inflybi/warehouse/internal/warehouse"

// BuildBridge derives the order/product bridge from the finished order-item
// fact: one row per distinct (order, product) pair, keyed by first appearance
// after deduplication. Item rows without a product contribute nothing.
func BuildBridge(items []warehouse.PedidoItem) []warehouse.PedidoProduto {
	type pair struct {
		pedido  int64
		produto int64
	}

	seen := make(map[pair]struct{}, len(items))

	var out []warehouse.PedidoProduto

	for _, item := range items {
		if item.IDProduto == nil {
			continue
		}

		p := pair{pedido: item.IDPedido, produto: *item.IDProduto}
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}

		out = append(out, warehouse.PedidoProduto{
			ID:        int64(len(out)),
			IDPedido:  p.pedido,
			IDProduto: p.produto,
		})
	}

	return out
}
