package mysql

import (
	"errors"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type shipmentRepo struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepo{db: db}
}

func (r *shipmentRepo) Create(shipment *domain.Shipment) error {
	return r.db.Create(shipment).Error
}

func (r *shipmentRepo) FindByID(id uint64) (*domain.Shipment, error) {
	var s domain.Shipment
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("shipment FindByID error: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *shipmentRepo) FindAll() ([]domain.Shipment, error) {
	var out []domain.Shipment
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		log.Printf("shipment FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *shipmentRepo) Update(shipment *domain.Shipment) error {
	return r.db.Save(shipment).Error
}

func (r *shipmentRepo) Delete(id uint64) error {
	res := r.db.Delete(&domain.Shipment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
