package seed

import (
	"fmt"

	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// Contagens esperadas após o seed, expostas para verificação de idempotência.
const (
	CategoryCount = 9
	UnitCount     = 11
	ItemCount     = 57
)

// Seeder povoa os dados de referência (categorias, unidades, catálogo
// inicial de itens) via primitivas find-or-create.
type Seeder struct {
	catalog repository.CatalogRepository
	items   repository.ItemRepository
	log     *logger.Logger
}

// NewSeeder constrói o seeder.
func NewSeeder(catalog repository.CatalogRepository, items repository.ItemRepository, log *logger.Logger) *Seeder {
	return &Seeder{catalog: catalog, items: items, log: log}
}

// Run executa o povoamento. Idempotente: o estado final é idêntico rodando
// uma ou N vezes. Item com categoria ou unidade fora dos conjuntos fixos é
// pulado com warn, não é erro.
func (s *Seeder) Run() error {
	s.log.Info().Msg("iniciando o povoamento do banco de dados")

	categoryIDs := make(map[string]int64, len(initialCategories))
	for _, name := range initialCategories {
		id, err := s.catalog.FindOrCreateCategory(name)
		if err != nil {
			return fmt.Errorf("seed categoria %q: %w", name, err)
		}
		categoryIDs[name] = id
	}

	unitIDs := make(map[string]int64, len(initialUnits))
	for _, u := range initialUnits {
		id, err := s.catalog.FindOrCreateUnit(u.Name, u.Code)
		if err != nil {
			return fmt.Errorf("seed unidade %q: %w", u.Name, err)
		}
		unitIDs[u.Name] = id
	}

	for _, item := range initialItems {
		catID, okCat := categoryIDs[item.Category]
		unitID, okUnit := unitIDs[item.Unit]
		if !okCat || !okUnit {
			s.log.Warn().Str("item", item.Name).Msg("item pulado: categoria ou unidade não encontrada")
			continue
		}
		if err := s.items.CreateIfAbsent(item.Name, &catID, &unitID); err != nil {
			return fmt.Errorf("seed item %q: %w", item.Name, err)
		}
	}

	s.log.Info().Msg("povoamento do banco de dados concluído")
	return nil
}
