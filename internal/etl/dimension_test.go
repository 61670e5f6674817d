package etl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inflybi/warehouse/internal/etl"
)

func TestConformClientes(t *testing.T) {
	rows := []etl.PersonRow{
		{
			ID:               1,
			Nome:             "Maria",
			TipoPessoa:       "Cliente",
			Email:            strp("maria@example.com"),
			Fone:             strp("555-0100"),
			Sexo:             strp("F"),
			TipoCliente:      strp("Pessoa Física"),
			CategoriaCliente: strp("Premium"),
			DataNascimento:   strp("1990-07-21"),
		},
		{ID: 2, Nome: "ACME", TipoPessoa: "Cliente"},
	}

	dims := etl.ConformClientes(rows)
	require.Len(t, dims, 2)

	c := dims[0]
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Maria", c.Nome)
	assert.Equal(t, "Cliente", c.TipoPessoa)
	assert.Equal(t, "Premium", *c.Categoria)
	require.NotNil(t, c.DataNascimento)
	assert.Equal(t, date(1990, 7, 21), *c.DataNascimento)

	// Sparse source rows stay sparse; no defaults are invented.
	assert.Nil(t, dims[1].Email)
	assert.Nil(t, dims[1].Categoria)
	assert.Nil(t, dims[1].DataNascimento)
}

func TestConformVendedores(t *testing.T) {
	rows := []etl.PersonRow{
		{
			ID:               9,
			Nome:             "João",
			TipoPessoa:       "Vendedor",
			Email:            strp("joao@example.com"),
			CategoriaCliente: strp("Interno"),
			DataNascimento:   strp("1985-02-28 00:00:00"),
		},
	}

	dims := etl.ConformVendedores(rows)
	require.Len(t, dims, 1)

	v := dims[0]
	assert.Equal(t, "Vendedor", v.Tipo)
	assert.Equal(t, "Interno", *v.Categoria)
	require.NotNil(t, v.DataNasc)
	assert.Equal(t, date(1985, 2, 28), *v.DataNasc)
}

func TestConformProdutos(t *testing.T) {
	rows := []etl.ProductRow{
		{ID: 1, Nome: "Curso A", FamiliaProduto: strp("Cursos")},
		{ID: 2, Nome: "Avulso"},
	}

	dims := etl.ConformProdutos(rows)
	require.Len(t, dims, 2)

	assert.Equal(t, "Cursos", *dims[0].FamiliaProduto)
	assert.Nil(t, dims[1].FamiliaProduto)
}
