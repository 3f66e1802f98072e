package entity

// Category categoria de itens do catálogo (nome único).
type Category struct {
	ID   int64
	Name string
}

// UnitOfMeasure unidade de medida de um item (nome único, sigla curta).
type UnitOfMeasure struct {
	ID   int64
	Name string
	Code string
}
