package repository

import "github.com/dosedata/dose-certa/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// Leituras devolvem (nil, nil) quando não há resultado.
type UserRepository interface {
	// Create persiste um novo usuário. Devolve domain.ErrEmailAlreadyExists
	// se o e-mail já estiver cadastrado.
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByID(id int64) (*entity.User, error)
	Count() (int, error)
	// HasNonDefault informa se existe algum usuário cujo e-mail difere do
	// e-mail da conta seed. Usado para fechar o autocadastro ao primeiro
	// usuário real.
	HasNonDefault(seedEmail string) (bool, error)
	UpdateName(id int64, name string) error
	UpdatePassword(id int64, passwordHash string) error
}
