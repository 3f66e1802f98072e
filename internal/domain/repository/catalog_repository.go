package repository

import "github.com/dosedata/dose-certa/internal/domain/entity"

// CatalogRepository define o porto de persistência para categorias e
// unidades de medida.
type CatalogRepository interface {
	// FindOrCreateCategory busca a categoria pelo nome único e devolve seu
	// id, inserindo antes apenas se não existir. Operação lógica única do
	// ponto de vista do chamador.
	FindOrCreateCategory(name string) (int64, error)
	FindOrCreateUnit(name, code string) (int64, error)
	ListCategories() ([]*entity.Category, error)
	ListUnits() ([]*entity.UnitOfMeasure, error)
	// DeleteCategory exclui a categoria; itens dependentes sobrevivem com a
	// referência anulada (SET NULL no schema).
	DeleteCategory(id int64) error
	DeleteUnit(id int64) error
}
