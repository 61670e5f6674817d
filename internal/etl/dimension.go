package etl

import "github.com/inflybi/warehouse/internal/warehouse"

// Dimension conformers: pure column projections from the extracted row sets
// into the target dimension schemas. No joins, no filtering; the extraction
// queries already applied the group filters.

func ConformClientes(rows []PersonRow) []warehouse.Cliente {
	out := make([]warehouse.Cliente, len(rows))
	for i, r := range rows {
		out[i] = warehouse.Cliente{
			ID:             r.ID,
			Nome:           r.Nome,
			TipoPessoa:     r.TipoPessoa,
			TipoCliente:    r.TipoCliente,
			Email:          r.Email,
			Fone:           r.Fone,
			Sexo:           r.Sexo,
			Categoria:      r.CategoriaCliente,
			DataNascimento: parseDate(r.DataNascimento),
		}
	}

	return out
}

func ConformVendedores(rows []PersonRow) []warehouse.Vendedor {
	out := make([]warehouse.Vendedor, len(rows))
	for i, r := range rows {
		out[i] = warehouse.Vendedor{
			ID:        r.ID,
			Nome:      r.Nome,
			Email:     r.Email,
			Fone:      r.Fone,
			Tipo:      r.TipoPessoa,
			Categoria: r.CategoriaCliente,
			DataNasc:  parseDate(r.DataNascimento),
		}
	}

	return out
}

func ConformProdutos(rows []ProductRow) []warehouse.Produto {
	out := make([]warehouse.Produto, len(rows))
	for i, r := range rows {
		out[i] = warehouse.Produto{
			ID:             r.ID,
			Nome:           r.Nome,
			FamiliaProduto: r.FamiliaProduto,
		}
	}

	return out
}
