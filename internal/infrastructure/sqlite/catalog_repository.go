package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementação do porto CatalogRepository sobre SQLite.
// O find-or-create assume escritor único (sem garantia de corrida entre
// processos, fora do escopo do produto).
type CatalogRepo struct {
	store *Store
	log   *logger.Logger
}

// NewCatalogRepository constrói o adaptador de persistência do catálogo.
func NewCatalogRepository(store *Store, log *logger.Logger) *CatalogRepo {
	return &CatalogRepo{store: store, log: log}
}

// FindOrCreateCategory busca a categoria pelo nome único, inserindo antes
// apenas se não existir. Devolve o mesmo id em chamadas repetidas.
func (r *CatalogRepo) FindOrCreateCategory(name string) (int64, error) {
	var id int64
	err := r.store.DB().QueryRow(`SELECT id FROM categorias WHERE nome = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select categoria: %w", err)
	}

	res, err := r.store.DB().Exec(`INSERT INTO categorias (nome) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("insert categoria: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id categoria: %w", err)
	}
	return id, nil
}

// FindOrCreateUnit busca a unidade de medida pelo nome único, inserindo
// antes apenas se não existir.
func (r *CatalogRepo) FindOrCreateUnit(name, code string) (int64, error) {
	var id int64
	err := r.store.DB().QueryRow(`SELECT id FROM unidades_medida WHERE nome = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select unidade: %w", err)
	}

	res, err := r.store.DB().Exec(`INSERT INTO unidades_medida (nome, sigla) VALUES (?, ?)`, name, code)
	if err != nil {
		return 0, fmt.Errorf("insert unidade: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id unidade: %w", err)
	}
	return id, nil
}

// ListCategories lista as categorias ordenadas por nome.
func (r *CatalogRepo) ListCategories() ([]*entity.Category, error) {
	rows, err := r.store.DB().Query(`SELECT id, nome FROM categorias ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListUnits lista as unidades de medida ordenadas por nome.
func (r *CatalogRepo) ListUnits() ([]*entity.UnitOfMeasure, error) {
	rows, err := r.store.DB().Query(`SELECT id, nome, sigla FROM unidades_medida ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list unidades: %w", err)
	}
	defer rows.Close()

	var list []*entity.UnitOfMeasure
	for rows.Next() {
		var (
			u    entity.UnitOfMeasure
			code sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Name, &code); err != nil {
			return nil, fmt.Errorf("scan unidade: %w", err)
		}
		u.Code = code.String
		list = append(list, &u)
	}
	return list, rows.Err()
}

// DeleteCategory exclui a categoria. Itens que a referenciam ficam com a
// referência anulada pelo ON DELETE SET NULL do schema.
func (r *CatalogRepo) DeleteCategory(id int64) error {
	if _, err := r.store.DB().Exec(`DELETE FROM categorias WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

// DeleteUnit exclui a unidade de medida, anulando referências em itens.
func (r *CatalogRepo) DeleteUnit(id int64) error {
	if _, err := r.store.DB().Exec(`DELETE FROM unidades_medida WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete unidade: %w", err)
	}
	return nil
}
