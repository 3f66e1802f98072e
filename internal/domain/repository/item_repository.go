package repository

import "github.com/dosedata/dose-certa/internal/domain/entity"

// ItemRepository define o porto de persistência para Item.
type ItemRepository interface {
	// ListWithDetails devolve os itens com nome de categoria e unidade
	// resolvidos via LEFT JOIN, ordenados por nome do item. Tolerante a
	// categoria/unidade nulas.
	ListWithDetails() ([]*entity.ItemDetails, error)
	GetByID(id int64) (*entity.Item, error)
	// Add insere um item. Devolve domain.ErrItemAlreadyExists se o nome já
	// estiver cadastrado.
	Add(name string, categoryID, unitID *int64) error
	// CreateIfAbsent insere o item apenas se nenhum com esse nome existir.
	CreateIfAbsent(name string, categoryID, unitID *int64) error
	Update(id int64, name string, categoryID, unitID *int64) error
	Delete(id int64) error
	Count() (int, error)
}
