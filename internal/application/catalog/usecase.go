package catalog

import (
	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// FormData tudo que a tela de itens precisa para montar lista e formulário:
// itens com detalhes, categorias e unidades, carregados em lote sobre o
// mesmo handle compartilhado.
type FormData struct {
	Items      []*entity.ItemDetails
	Categories []*entity.Category
	Units      []*entity.UnitOfMeasure
}

// UseCase casos de uso do catálogo de itens. É o único contrato que a camada
// de UI pode chamar; nenhuma consulta direta ao banco fora daqui.
type UseCase struct {
	items   repository.ItemRepository
	catalog repository.CatalogRepository
	log     *logger.Logger
}

// NewUseCase constrói os casos de uso do catálogo.
func NewUseCase(items repository.ItemRepository, catalog repository.CatalogRepository, log *logger.Logger) *UseCase {
	return &UseCase{items: items, catalog: catalog, log: log}
}

// LoadFormData carrega itens, categorias e unidades para a tela de CRUD.
func (uc *UseCase) LoadFormData() (*FormData, error) {
	items, err := uc.items.ListWithDetails()
	if err != nil {
		return nil, err
	}
	categories, err := uc.catalog.ListCategories()
	if err != nil {
		return nil, err
	}
	units, err := uc.catalog.ListUnits()
	if err != nil {
		return nil, err
	}
	return &FormData{Items: items, Categories: categories, Units: units}, nil
}

// GetItem busca um item para preencher o formulário de edição.
func (uc *UseCase) GetItem(id int64) (*entity.Item, error) {
	return uc.items.GetByID(id)
}

// AddItem adiciona um item ao catálogo. Nome duplicado é uma condição
// benigna e distinguível: devolve domain.ErrItemAlreadyExists (já logado em
// warn pelo repositório); o chamador pode ignorá-la.
func (uc *UseCase) AddItem(name string, categoryID, unitID *int64) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.items.Add(name, categoryID, unitID)
}

// UpdateItem atualiza nome, categoria e unidade de um item.
func (uc *UseCase) UpdateItem(id int64, name string, categoryID, unitID *int64) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.items.Update(id, name, categoryID, unitID)
}

// DeleteItem exclui um item do catálogo.
func (uc *UseCase) DeleteItem(id int64) error {
	return uc.items.Delete(id)
}

// DeleteCategory exclui uma categoria; itens dependentes têm a referência
// anulada pelo schema.
func (uc *UseCase) DeleteCategory(id int64) error {
	return uc.catalog.DeleteCategory(id)
}

// DeleteUnit exclui uma unidade de medida, anulando referências em itens.
func (uc *UseCase) DeleteUnit(id int64) error {
	return uc.catalog.DeleteUnit(id)
}
