package entity

import "github.com/shopspring/decimal"

// Item representa um item de estoque do catálogo. Categoria e unidade são
// opcionais: a exclusão de qualquer uma das duas anula a referência sem
// excluir o item (ON DELETE SET NULL).
type Item struct {
	ID            int64
	CategoryID    *int64
	UnitID        *int64
	Name          string // único
	StockQuantity decimal.Decimal
	UnitCost      decimal.NullDecimal
	Barcode       *string
	Active        bool
}

// ItemDetails projeção de item com os nomes de categoria e unidade já
// resolvidos (LEFT JOIN). Campos vazios quando a referência é nula.
type ItemDetails struct {
	ID           int64
	Name         string
	CategoryID   *int64
	UnitID       *int64
	CategoryName string
	UnitName     string
}
