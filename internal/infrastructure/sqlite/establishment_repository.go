package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)

// EstablishmentRepo implementação do porto EstablishmentRepository sobre SQLite.
type EstablishmentRepo struct {
	store *Store
	log   *logger.Logger
}

// NewEstablishmentRepository constrói o adaptador de persistência de estabelecimentos.
func NewEstablishmentRepository(store *Store, log *logger.Logger) *EstablishmentRepo {
	return &EstablishmentRepo{store: store, log: log}
}

// FindByUser busca o estabelecimento de um usuário. (nil, nil) se não existe.
func (r *EstablishmentRepo) FindByUser(userID int64) (*entity.Establishment, error) {
	query := `SELECT id, id_usuario, nome, criado_em FROM estabelecimentos WHERE id_usuario = ?`
	var (
		e         entity.Establishment
		createdAt string
	)
	err := r.store.DB().QueryRow(query, userID).Scan(&e.ID, &e.UserID, &e.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select estabelecimento: %w", err)
	}
	if t, err := time.ParseInLocation(sqliteTimeLayout, createdAt, time.Local); err == nil {
		e.CreatedAt = t
	}
	return &e, nil
}

// UserHasEstablishment informa se o usuário já concluiu o onboarding.
func (r *EstablishmentRepo) UserHasEstablishment(userID int64) (bool, error) {
	var one int
	err := r.store.DB().QueryRow(`SELECT 1 FROM estabelecimentos WHERE id_usuario = ? LIMIT 1`, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("verificar estabelecimento: %w", err)
	}
	return true, nil
}

// ListLocations lista os locais de estoque de um estabelecimento, por nome.
func (r *EstablishmentRepo) ListLocations(establishmentID int64) ([]*entity.StockLocation, error) {
	query := `SELECT id, id_estabelecimento, nome FROM locais_estoque WHERE id_estabelecimento = ? ORDER BY nome`
	rows, err := r.store.DB().Query(query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list locais de estoque: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockLocation
	for rows.Next() {
		var l entity.StockLocation
		if err := rows.Scan(&l.ID, &l.EstablishmentID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan local de estoque: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
