package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/dosedata/dose-certa/internal/application/auth"
	"github.com/dosedata/dose-certa/internal/domain"
	"github.com/dosedata/dose-certa/internal/domain/entity"
	"github.com/dosedata/dose-certa/internal/domain/repository"
	"github.com/dosedata/dose-certa/pkg/logger"
)

// State estado da sessão. As transições formam a máquina:
//
//	Unauthenticated --login ok--> AuthenticatedNoEstablishment | AuthenticatedOnboarded
//	AuthenticatedNoEstablishment --onboarding ok--> AuthenticatedOnboarded
//	qualquer autenticado --logout--> Unauthenticated
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticatedNoEstablishment
	StateAuthenticatedOnboarded
)

// String nome legível do estado, para logs.
func (s State) String() string {
	switch s {
	case StateAuthenticatedNoEstablishment:
		return "authenticated-no-establishment"
	case StateAuthenticatedOnboarded:
		return "authenticated-onboarded"
	default:
		return "unauthenticated"
	}
}

// Session identidade da sessão corrente: token opaco + snapshot do usuário.
type Session struct {
	Token string
	User  *entity.User
}

// OnboardingRunner porto para a escrita transacional do onboarding
// (nome do usuário + estabelecimento + local de estoque padrão, atômicos).
type OnboardingRunner interface {
	CompleteOnboarding(ctx context.Context, userID int64, userName, establishmentName, locationName string) error
}

// Manager orquestra login, onboarding e logout para a camada de UI.
// Processo de usuário único: uma sessão ativa por vez.
type Manager struct {
	auth           *auth.Service
	establishments repository.EstablishmentRepository
	onboarding     OnboardingRunner
	log            *logger.Logger

	state   State
	current *Session
}

// NewManager constrói o orquestrador de sessão no estado Unauthenticated.
func NewManager(authSvc *auth.Service, establishments repository.EstablishmentRepository, onboarding OnboardingRunner, log *logger.Logger) *Manager {
	return &Manager{
		auth:           authSvc,
		establishments: establishments,
		onboarding:     onboarding,
		log:            log,
		state:          StateUnauthenticated,
	}
}

// State devolve o estado corrente da máquina.
func (m *Manager) State() State {
	return m.state
}

// Current devolve a sessão ativa, ou nil se não autenticado.
func (m *Manager) Current() *Session {
	return m.current
}

// Login autentica e decide o próximo estado consultando se o usuário já tem
// estabelecimento. Credenciais inválidas mantêm o estado Unauthenticated e
// devolvem domain.ErrUnauthorized.
func (m *Manager) Login(email, password string) (*Session, error) {
	user, err := m.auth.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	onboarded, err := m.establishments.UserHasEstablishment(user.ID)
	if err != nil {
		return nil, err
	}

	m.current = &Session{Token: uuid.NewString(), User: user}
	if onboarded {
		m.state = StateAuthenticatedOnboarded
	} else {
		m.state = StateAuthenticatedNoEstablishment
	}
	m.log.Info().Str("estado", m.state.String()).Int64("id_usuario", user.ID).Msg("sessão iniciada")
	return m.current, nil
}

// CompleteOnboarding executa a escrita transacional do onboarding e avança
// para AuthenticatedOnboarded. Exige sessão ativa; é no-op com erro se o
// onboarding já foi concluído.
func (m *Manager) CompleteOnboarding(ctx context.Context, userName, establishmentName, locationName string) error {
	if m.current == nil {
		return domain.ErrNoSession
	}
	if m.state == StateAuthenticatedOnboarded {
		return domain.ErrOnboardingDone
	}

	if err := m.onboarding.CompleteOnboarding(ctx, m.current.User.ID, userName, establishmentName, locationName); err != nil {
		return err
	}
	m.current.User.Name = userName
	m.state = StateAuthenticatedOnboarded
	return nil
}

// Logout limpa a identidade da sessão e volta para Unauthenticated.
func (m *Manager) Logout() {
	if m.current != nil {
		m.log.Info().Int64("id_usuario", m.current.User.ID).Msg("sessão encerrada")
	}
	m.current = nil
	m.state = StateUnauthenticated
}

// CanAccess informa se a área pedida pode ser exibida. Qualquer área
// protegida é negada sem identidade de sessão, independente do destino.
func (m *Manager) CanAccess(protected bool) bool {
	if !protected {
		return true
	}
	return m.current != nil
}
