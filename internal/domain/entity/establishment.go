package entity

import "time"

// Establishment representa o estabelecimento (bar/restaurante) de um usuário.
// O fluxo do produto cria no máximo um por usuário, durante o onboarding.
type Establishment struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
}

// StockLocation representa um local de estoque dentro de um estabelecimento.
// Excluir o estabelecimento exclui seus locais em cascata.
type StockLocation struct {
	ID              int64
	EstablishmentID int64
	Name            string
}
