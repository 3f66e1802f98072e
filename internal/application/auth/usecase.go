package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// Credenciais da conta seed, usadas só no bootstrap. A senha é trocável
// depois pelo caminho normal de atualização.
const (
	DefaultEmail    = "admin@dosedata.com"
	defaultPassword = "admin"
	defaultName     = "Admin Padrão"
	defaultWhatsApp = "11999999999"
)

// Service casos de uso de autenticação: bootstrap da conta padrão,
// verificação de credenciais e autocadastro com trava de usuário único.
type Service struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewService constrói o serviço de autenticação.
func NewService(users repository.UserRepository, log *logger.Logger) *Service {
	return &Service{users: users, log: log}
}

// HashPassword gera um hash bcrypt (salt aleatório por senha, custo adaptativo).
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara a senha em texto plano com o hash armazenado.
// Hash malformado (inclusive formatos de digest antigos) conta como falha
// de verificação, nunca como pânico.
func (s *Service) VerifyPassword(plain, hash string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Error().Err(err).Msg("hash de senha armazenado é inválido")
		}
		return false
	}
	return true
}

// CreateDefaultAccount cria a conta administrativa seed se ela ainda não
// existe. Idempotente: seguro de chamar a cada inicialização.
func (s *Service) CreateDefaultAccount() error {
	user, err := s.users.FindByEmail(DefaultEmail)
	if err != nil {
		return err
	}
	if user != nil {
		s.log.Debug().Msg("usuário padrão já existe")
		return nil
	}

	s.log.Info().Msg("criando usuário padrão")
	hash, err := HashPassword(defaultPassword)
	if err != nil {
		return err
	}
	contact := defaultWhatsApp
	err = s.users.Create(&entity.User{
		Name:         defaultName,
		Email:        DefaultEmail,
		PasswordHash: hash,
		WhatsApp:     &contact,
	})
	// Corrida benigna com outra inicialização: a conta já está lá.
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return nil
	}
	return err
}

// Authenticate verifica e-mail e senha. Devolve (nil, nil) para credenciais
// em branco, e-mail desconhecido ou senha incorreta; o usuário completo no
// sucesso.
func (s *Service) Authenticate(email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		s.log.Warn().Msg("tentativa de login com e-mail ou senha vazios")
		return nil, nil
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn().Str("email", email).Msg("login falhou: e-mail não encontrado")
		return nil, nil
	}
	if !s.VerifyPassword(password, user.PasswordHash) {
		s.log.Warn().Str("email", email).Msg("login falhou: senha incorreta")
		return nil, nil
	}

	s.log.Info().Str("email", email).Msg("usuário autenticado")
	return user, nil
}

// RegistrationOpen informa se o autocadastro ainda está aberto. A política
// do produto permite uma única conta real: existir qualquer usuário além
// da seed fecha a entrada.
func (s *Service) RegistrationOpen() bool {
	has, err := s.users.HasNonDefault(DefaultEmail)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao verificar a existência de usuário real")
		// Na dúvida, mantém o cadastro fechado.
		return false
	}
	return !has
}

// Register cadastra uma nova conta. Devolve (ok, mensagem para o usuário).
func (s *Service) Register(name, email, password string) (bool, string) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return false, "Preencha todos os campos."
	}
	if !s.RegistrationOpen() {
		return false, "Cadastro de novos usuários encerrado."
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao verificar e-mail no cadastro")
		return false, "Não foi possível concluir o cadastro."
	}
	if existing != nil {
		return false, "E-mail já cadastrado."
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao gerar hash de senha")
		return false, "Não foi possível concluir o cadastro."
	}
	err = s.users.Create(&entity.User{Name: name, Email: email, PasswordHash: hash})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return false, "E-mail já cadastrado."
	}
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao criar usuário")
		return false, "Não foi possível concluir o cadastro."
	}

	s.log.Info().Str("email", email).Msg("usuário cadastrado")
	return true, "Cadastro realizado com sucesso."
}
