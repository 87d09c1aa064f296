package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tms-lite/logger"
	"tms-lite/metrics"
	driverModel "tms-lite/models/driver"
	shipmentModel "tms-lite/models/shipment"
	"tms-lite/services"
	"tms-lite/services/shipment_history"
	shipmentTypes "tms-lite/types/shipment"

	"gorm.io/gorm"
)

// Service implements the shipment lifecycle. Every mutation runs in one
// transaction together with its history line.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AddBoxResult reports the outcome of AddBox. Duplicate is a soft rejection:
// nothing was written and the caller should show a notice.
type AddBoxResult struct {
	Box       *shipmentModel.Box
	Code      string
	Duplicate bool
}

// Create inserts a Pending shipment and its "created" history line.
func (s *Service) Create(ctx context.Context, req shipmentTypes.CreateShipmentRequest) (*shipmentModel.Shipment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}
	driverID, _ := req.DriverRef()

	shipment := shipmentModel.Shipment{
		CustomerName: req.CustomerName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Status:       shipmentModel.StatusPending,
		DriverID:     driverID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if driverID != nil {
			var d driverModel.Driver
			if err := tx.First(&d, *driverID).Error; err != nil {
				return fmt.Errorf("driver %d: %w", *driverID, services.NotFoundOr(err))
			}
		}

		if err := tx.Create(&shipment).Error; err != nil {
			return err
		}

		return shipment_history.Append(tx, shipment.ID, shipment_history.CreatedAction(shipment.CustomerName))
	})
	if err != nil {
		return nil, err
	}

	metrics.ShipmentsCreated.Inc()
	logger.Success(fmt.Sprintf("Shipment created successfully with ID: %d", shipment.ID))
	return s.Get(ctx, shipment.ID)
}

// ChangeStatus sets the status and appends a history line. Repeating the
// current status still records a new line.
func (s *Service) ChangeStatus(ctx context.Context, id uint, status shipmentModel.Status) (*shipmentModel.Shipment, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", services.ErrInvalidStatus, status)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shipment shipmentModel.Shipment
		if err := tx.First(&shipment, id).Error; err != nil {
			return fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
		}

		if err := tx.Model(&shipment).Update("status", status).Error; err != nil {
			return err
		}

		return shipment_history.Append(tx, shipment.ID, shipment_history.StatusChangedAction(status))
	})
	if err != nil {
		return nil, err
	}

	metrics.StatusChanges.WithLabelValues(status.String()).Inc()
	return s.Get(ctx, id)
}

// AssignDriver points the shipment at driverID, or clears it when nil.
func (s *Service) AssignDriver(ctx context.Context, id uint, driverID *uint) (*shipmentModel.Shipment, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shipment shipmentModel.Shipment
		if err := tx.First(&shipment, id).Error; err != nil {
			return fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
		}

		action := shipment_history.DriverUnassignedAction()
		if driverID != nil {
			var d driverModel.Driver
			if err := tx.First(&d, *driverID).Error; err != nil {
				return fmt.Errorf("driver %d: %w", *driverID, services.NotFoundOr(err))
			}
			action = shipment_history.DriverAssignedAction(d.Name)
		}

		if err := tx.Model(&shipment).Update("driver_id", driverID).Error; err != nil {
			return err
		}

		return shipment_history.Append(tx, shipment.ID, action)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// AddBox attaches a box to the shipment. The (shipment, code) unique index
// decides duplicates, so concurrent adds of one code leave exactly one row.
func (s *Service) AddBox(ctx context.Context, id uint, req shipmentTypes.AddBoxRequest) (AddBoxResult, error) {
	if err := req.Validate(); err != nil {
		return AddBoxResult{}, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	box := shipmentModel.Box{ShipmentID: id, Code: req.Code}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shipment shipmentModel.Shipment
		if err := tx.First(&shipment, id).Error; err != nil {
			return fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
		}

		if err := tx.Create(&box).Error; err != nil {
			if services.IsUniqueViolation(err) {
				return services.ErrDuplicateBox
			}
			return err
		}

		return shipment_history.Append(tx, shipment.ID, shipment_history.BoxAddedAction(box.Code))
	})

	if errors.Is(err, services.ErrDuplicateBox) {
		metrics.BoxesRejected.Inc()
		logger.Warning(fmt.Sprintf("Box %q already exists on shipment %d", req.Code, id))
		return AddBoxResult{Code: req.Code, Duplicate: true}, nil
	}
	if err != nil {
		return AddBoxResult{}, err
	}

	metrics.BoxesAdded.Inc()
	return AddBoxResult{Box: &box, Code: box.Code}, nil
}

// Delete removes the shipment with all of its boxes and history rows.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shipment shipmentModel.Shipment
		if err := tx.First(&shipment, id).Error; err != nil {
			return fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
		}

		if err := tx.Where("shipment_id = ?", id).Delete(&shipmentModel.Box{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shipment_id = ?", id).Delete(&shipmentModel.History{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shipment).Error
	})
	if err != nil {
		return err
	}

	metrics.ShipmentsDeleted.Inc()
	logger.Info(fmt.Sprintf("Shipment %d deleted", id))
	return nil
}

// Get loads one shipment with its driver, boxes and history.
func (s *Service) Get(ctx context.Context, id uint) (*shipmentModel.Shipment, error) {
	var shipment shipmentModel.Shipment
	err := withRelations(s.db.WithContext(ctx)).First(&shipment, id).Error
	if err != nil {
		return nil, fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
	}
	return &shipment, nil
}

// List returns every shipment in creation order.
func (s *Service) List(ctx context.Context) ([]shipmentModel.Shipment, error) {
	var shipments []shipmentModel.Shipment
	err := withRelations(s.db.WithContext(ctx)).Order("id asc").Find(&shipments).Error
	return shipments, err
}

// History returns the shipment's history lines, oldest first. A non-nil
// since keeps only lines written at or after it.
func (s *Service) History(ctx context.Context, id uint, since *time.Time) ([]shipmentModel.History, error) {
	db := s.db.WithContext(ctx)

	var shipment shipmentModel.Shipment
	if err := db.Select("id").First(&shipment, id).Error; err != nil {
		return nil, fmt.Errorf("shipment %d: %w", id, services.NotFoundOr(err))
	}

	q := db.Where("shipment_id = ?", id)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}

	var history []shipmentModel.History
	err := q.Order("id asc").Find(&history).Error
	return history, err
}

// CountCreatedSince counts shipments created at or after t.
func (s *Service) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&shipmentModel.Shipment{}).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Driver").
		Preload("Boxes", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
}
