package driver

import (
	"context"
	"fmt"

	"tms-lite/logger"
	driverModel "tms-lite/models/driver"
	shipmentModel "tms-lite/models/shipment"
	"tms-lite/services"
	"tms-lite/services/shipment_history"
	driverTypes "tms-lite/types/driver"

	"gorm.io/gorm"
)

// Service is the driver registry.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, req driverTypes.DriverRequest) (*driverModel.Driver, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	d := driverModel.Driver{Name: req.Name, TruckNumber: req.TruckNumber}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		logger.Error("Failed to create driver", err)
		return nil, err
	}
	logger.Success(fmt.Sprintf("Driver created successfully with ID: %d", d.ID))
	return &d, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*driverModel.Driver, error) {
	var d driverModel.Driver
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, fmt.Errorf("driver %d: %w", id, services.NotFoundOr(err))
	}
	return &d, nil
}

// List returns drivers in creation order.
func (s *Service) List(ctx context.Context) ([]driverModel.Driver, error) {
	var drivers []driverModel.Driver
	err := s.db.WithContext(ctx).Order("id asc").Find(&drivers).Error
	return drivers, err
}

func (s *Service) Update(ctx context.Context, id uint, req driverTypes.DriverRequest) (*driverModel.Driver, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Name = req.Name
	d.TruckNumber = req.TruckNumber
	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes the driver. Shipments assigned to it become unassigned
// (and say so in their history); none are deleted.
func (s *Service) Delete(ctx context.Context, id uint) error {
	var released int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d driverModel.Driver
		if err := tx.First(&d, id).Error; err != nil {
			return fmt.Errorf("driver %d: %w", id, services.NotFoundOr(err))
		}

		var shipmentIDs []uint
		if err := tx.Model(&shipmentModel.Shipment{}).Where("driver_id = ?", id).Pluck("id", &shipmentIDs).Error; err != nil {
			return err
		}

		if len(shipmentIDs) > 0 {
			if err := tx.Model(&shipmentModel.Shipment{}).Where("id IN ?", shipmentIDs).Update("driver_id", nil).Error; err != nil {
				return err
			}
			for _, sid := range shipmentIDs {
				if err := shipment_history.Append(tx, sid, shipment_history.DriverUnassignedAction()); err != nil {
					return err
				}
			}
		}
		released = len(shipmentIDs)

		return tx.Delete(&d).Error
	})
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Driver %d deleted, %d shipment(s) unassigned", id, released))
	return nil
}
