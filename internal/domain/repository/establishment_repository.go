package repository

import "github.com/dosedata/dose-certa/internal/domain/entity"

// EstablishmentRepository define o porto de persistência para Establishment.
type EstablishmentRepository interface {
	FindByUser(userID int64) (*entity.Establishment, error)
	UserHasEstablishment(userID int64) (bool, error)
	ListLocations(establishmentID int64) ([]*entity.StockLocation, error)
}
