package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrItemAlreadyExists  = errors.New("item já cadastrado")
	ErrDuplicateName      = errors.New("nome já cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("credenciais inválidas")
	ErrRegistrationClosed = errors.New("cadastro de novos usuários encerrado")
	ErrOnboardingDone     = errors.New("onboarding já concluído")
	ErrNoSession          = errors.New("nenhuma sessão ativa")
)
