package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Formato do datetime('now', 'localtime') do SQLite.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// UserRepo implementação do porto UserRepository sobre SQLite.
type UserRepo struct {
	store *Store
	log   *logger.Logger
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(store *Store, log *logger.Logger) *UserRepo {
	return &UserRepo{store: store, log: log}
}

// Create persiste um novo usuário. Violação de unicidade do e-mail é uma
// condição benigna: vira domain.ErrEmailAlreadyExists, logada em warn.
func (r *UserRepo) Create(user *entity.User) error {
	query := `INSERT INTO usuarios (nome, email, senha_hash, whatsapp) VALUES (?, ?, ?, ?)`
	res, err := r.store.DB().Exec(query, user.Name, user.Email, user.PasswordHash, user.WhatsApp)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warn().Str("email", user.Email).Msg("usuário com esse e-mail já existe")
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id usuario: %w", err)
	}
	user.ID = id
	return nil
}

// FindByEmail busca um usuário pelo e-mail. (nil, nil) se não existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT id, nome, email, senha_hash, whatsapp, criado_em FROM usuarios WHERE email = ?`
	return r.scanOne(r.store.DB().QueryRow(query, email))
}

// FindByID busca um usuário pelo id. (nil, nil) se não existe.
func (r *UserRepo) FindByID(id int64) (*entity.User, error) {
	query := `SELECT id, nome, email, senha_hash, whatsapp, criado_em FROM usuarios WHERE id = ?`
	return r.scanOne(r.store.DB().QueryRow(query, id))
}

func (r *UserRepo) scanOne(row *sql.Row) (*entity.User, error) {
	var (
		u         entity.User
		hash      sql.NullString
		createdAt string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &hash, &u.WhatsApp, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select usuario: %w", err)
	}
	u.PasswordHash = hash.String
	if t, err := time.ParseInLocation(sqliteTimeLayout, createdAt, time.Local); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}

// Count devolve o total de usuários cadastrados.
func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.store.DB().QueryRow(`SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}

// HasNonDefault informa se existe algum usuário além da conta seed.
func (r *UserRepo) HasNonDefault(seedEmail string) (bool, error) {
	var one int
	err := r.store.DB().QueryRow(`SELECT 1 FROM usuarios WHERE email != ? LIMIT 1`, seedEmail).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("verificar usuario real: %w", err)
	}
	return true, nil
}

// UpdateName atualiza o nome de exibição do usuário.
func (r *UserRepo) UpdateName(id int64, name string) error {
	if _, err := r.store.DB().Exec(`UPDATE usuarios SET nome = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("update nome usuario: %w", err)
	}
	return nil
}

// UpdatePassword troca o hash de senha do usuário. Permite alterar a
// credencial da conta seed após o bootstrap.
func (r *UserRepo) UpdatePassword(id int64, passwordHash string) error {
	if _, err := r.store.DB().Exec(`UPDATE usuarios SET senha_hash = ? WHERE id = ?`, passwordHash, id); err != nil {
		return fmt.Errorf("update senha usuario: %w", err)
	}
	return nil
}
