package driver

import (
	"context"
	"path/filepath"
	"testing"

	"tms-lite/config"
	"tms-lite/database"
	shipmentModel "tms-lite/models/shipment"
	"tms-lite/services"
	"tms-lite/services/shipment_history"
	driverTypes "tms-lite/types/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "tms.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestDB(t))

	a, err := svc.Create(ctx, driverTypes.DriverRequest{Name: "Ann", TruckNumber: "T-1"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, driverTypes.DriverRequest{Name: "Bob", TruckNumber: "T-2"})
	require.NoError(t, err)

	drivers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, a.ID, drivers[0].ID)
	assert.Equal(t, b.ID, drivers[1].ID)
}

func TestCreate_RequiresFields(t *testing.T) {
	svc := NewService(newTestDB(t))
	_, err := svc.Create(context.Background(), driverTypes.DriverRequest{Name: "Ann"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestDB(t))
	d, err := svc.Create(ctx, driverTypes.DriverRequest{Name: "Ann", TruckNumber: "T-1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, d.ID, driverTypes.DriverRequest{Name: "Ann Lee", TruckNumber: "T-9"})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", updated.Name)
	assert.Equal(t, "T-9", updated.TruckNumber)

	_, err = svc.Update(ctx, 404, driverTypes.DriverRequest{Name: "X", TruckNumber: "Y"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDelete_UnassignsShipmentsWithoutDeletingThem(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewService(db)

	d, err := svc.Create(ctx, driverTypes.DriverRequest{Name: "Ann", TruckNumber: "T-1"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, driverTypes.DriverRequest{Name: "Bob", TruckNumber: "T-2"})
	require.NoError(t, err)

	assigned := shipmentModel.Shipment{CustomerName: "Acme", Origin: "NY", Destination: "LA", Status: shipmentModel.StatusPending, DriverID: &d.ID}
	untouched := shipmentModel.Shipment{CustomerName: "Beta", Origin: "SF", Destination: "SEA", Status: shipmentModel.StatusPending, DriverID: &other.ID}
	require.NoError(t, db.Create(&assigned).Error)
	require.NoError(t, db.Create(&untouched).Error)

	require.NoError(t, svc.Delete(ctx, d.ID))

	var shipments []shipmentModel.Shipment
	require.NoError(t, db.Order("id asc").Find(&shipments).Error)
	require.Len(t, shipments, 2)
	assert.Nil(t, shipments[0].DriverID)
	require.NotNil(t, shipments[1].DriverID)
	assert.Equal(t, other.ID, *shipments[1].DriverID)

	var history []shipmentModel.History
	require.NoError(t, db.Where("shipment_id = ?", assigned.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, shipment_history.DriverUnassignedAction(), history[0].Action)

	_, err = svc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDelete_UnknownDriver(t *testing.T) {
	svc := NewService(newTestDB(t))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), services.ErrNotFound)
}
