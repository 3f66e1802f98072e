package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do porto ItemRepository sobre SQLite.
type ItemRepo struct {
	store *Store
	log   *logger.Logger
}

// NewItemRepository constrói o adaptador de persistência de itens.
func NewItemRepository(store *Store, log *logger.Logger) *ItemRepo {
	return &ItemRepo{store: store, log: log}
}

// ListWithDetails devolve os itens com nome de categoria e unidade resolvidos
// via LEFT JOIN, ordenados por nome. Categoria/unidade nulas viram string vazia.
func (r *ItemRepo) ListWithDetails() ([]*entity.ItemDetails, error) {
	query := `
		SELECT i.id, i.nome, i.id_categoria, i.id_unidade_medida,
		       c.nome AS categoria,
		       u.nome AS unidade
		FROM itens i
		LEFT JOIN categorias c ON i.id_categoria = c.id
		LEFT JOIN unidades_medida u ON i.id_unidade_medida = u.id
		ORDER BY i.nome`
	rows, err := r.store.DB().Query(query)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemDetails
	for rows.Next() {
		var (
			d        entity.ItemDetails
			category sql.NullString
			unit     sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.CategoryID, &d.UnitID, &category, &unit); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		d.CategoryName = category.String
		d.UnitName = unit.String
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetByID busca um item pelo id. (nil, nil) se não existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT id, id_categoria, id_unidade_medida, nome,
		       quantidade_estoque, custo_unitario, codigo_barras, ativo
		FROM itens WHERE id = ?`
	var i entity.Item
	err := r.store.DB().QueryRow(query, id).Scan(
		&i.ID, &i.CategoryID, &i.UnitID, &i.Name,
		&i.StockQuantity, &i.UnitCost, &i.Barcode, &i.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item: %w", err)
	}
	return &i, nil
}

// Add insere um item. Violação de unicidade do nome é benigna: vira
// domain.ErrItemAlreadyExists, logada em warn.
func (r *ItemRepo) Add(name string, categoryID, unitID *int64) error {
	query := `INSERT INTO itens (nome, id_categoria, id_unidade_medida) VALUES (?, ?, ?)`
	if _, err := r.store.DB().Exec(query, name, categoryID, unitID); err != nil {
		if isUniqueViolation(err) {
			r.log.Warn().Str("nome", name).Msg("item com esse nome já existe")
			return domain.ErrItemAlreadyExists
		}
		return fmt.Errorf("insert item: %w", err)
	}
	r.log.Info().Str("nome", name).Msg("item adicionado")
	return nil
}

// CreateIfAbsent insere o item apenas se nenhum com esse nome existir.
// No-op silencioso quando já existe; idempotente para o seeder.
func (r *ItemRepo) CreateIfAbsent(name string, categoryID, unitID *int64) error {
	var id int64
	err := r.store.DB().QueryRow(`SELECT id FROM itens WHERE nome = ?`, name).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("select item: %w", err)
	}
	query := `INSERT INTO itens (nome, id_categoria, id_unidade_medida) VALUES (?, ?, ?)`
	if _, err := r.store.DB().Exec(query, name, categoryID, unitID); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update atualiza nome, categoria e unidade de um item.
func (r *ItemRepo) Update(id int64, name string, categoryID, unitID *int64) error {
	query := `UPDATE itens SET nome = ?, id_categoria = ?, id_unidade_medida = ? WHERE id = ?`
	if _, err := r.store.DB().Exec(query, name, categoryID, unitID, id); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	r.log.Info().Int64("id", id).Msg("item atualizado")
	return nil
}

// Delete exclui o item (hard delete).
func (r *ItemRepo) Delete(id int64) error {
	if _, err := r.store.DB().Exec(`DELETE FROM itens WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	r.log.Info().Int64("id", id).Msg("item excluído")
	return nil
}

// Count devolve o total de itens do catálogo.
func (r *ItemRepo) Count() (int, error) {
	var n int
	if err := r.store.DB().QueryRow(`SELECT COUNT(*) FROM itens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count itens: %w", err)
	}
	return n, nil
}
