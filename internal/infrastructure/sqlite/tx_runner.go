package sqlite

import (
	"context"
	"fmt"

	"github.com/dosedata/dose-certa/internal/application/session"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// Garantia de que TxRunner implementa o porto do onboarding.
var _ session.OnboardingRunner = (*TxRunner)(nil)

// TxRunner executa escritas agrupadas dentro de uma transação SQLite.
type TxRunner struct {
	store *Store
	log   *logger.Logger
}

// NewTxRunner constrói o runner sobre o handle compartilhado.
func NewTxRunner(store *Store, log *logger.Logger) *TxRunner {
	return &TxRunner{store: store, log: log}
}

// CompleteOnboarding atualiza o nome do usuário, insere o estabelecimento e
// insere o local de estoque padrão — os três ou nenhum. O rollback adiado
// vira no-op após o commit.
func (r *TxRunner) CompleteOnboarding(ctx context.Context, userID int64, userName, establishmentName, locationName string) error {
	tx, err := r.store.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE usuarios SET nome = ? WHERE id = ?`, userName, userID); err != nil {
		return fmt.Errorf("update nome usuario: %w", err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO estabelecimentos (id_usuario, nome) VALUES (?, ?)`, userID, establishmentName)
	if err != nil {
		return fmt.Errorf("insert estabelecimento: %w", err)
	}
	establishmentID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id estabelecimento: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO locais_estoque (id_estabelecimento, nome) VALUES (?, ?)`, establishmentID, locationName); err != nil {
		return fmt.Errorf("insert local de estoque: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	r.log.Info().Int64("id_usuario", userID).Str("estabelecimento", establishmentName).Msg("onboarding concluído")
	return nil
}
