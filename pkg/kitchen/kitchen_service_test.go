package kitchen

import (
	"context"
	"testing"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupKitchenTest(t *testing.T) (KitchenService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.MenuItem{},
		&entities.Order{},
		&entities.OrderItem{},
	))
	return NewKitchenService(NewKitchenRepository(db)), db
}

func seedOrder(t *testing.T, db *gorm.DB, status string) entities.Order {
	t.Helper()
	item := entities.MenuItem{ID: uuid.New(), Name: "Masala Dosa", Price: 120}
	require.NoError(t, db.Create(&item).Error)

	order := entities.Order{
		ID:          uuid.New(),
		TableID:     uuid.New(),
		TableNumber: 3,
		CustomerID:  uuid.New(),
		TotalAmount: 240,
		BillNumber:  domain.BillPrefix + uuid.NewString(),
		Status:      status,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&entities.OrderItem{
		ID:         uuid.New(),
		OrderID:    order.ID,
		MenuItemID: item.ID,
		Quantity:   2,
		UnitPrice:  120,
	}).Error)
	return order
}

func orderStatus(t *testing.T, db *gorm.DB, id uuid.UUID) string {
	t.Helper()
	var order entities.Order
	require.NoError(t, db.Where("id = ?", id).First(&order).Error)
	return order.Status
}

func TestStartPendingOrder(t *testing.T) {
	service, db := setupKitchenTest(t)
	ctx := context.Background()
	order := seedOrder(t, db, domain.OrderPending)

	require.NoError(t, service.Start(ctx, order.ID.String()))
	assert.Equal(t, domain.OrderInProgress, orderStatus(t, db, order.ID))
}

func TestStartTwiceConflicts(t *testing.T) {
	service, db := setupKitchenTest(t)
	ctx := context.Background()
	order := seedOrder(t, db, domain.OrderPending)

	require.NoError(t, service.Start(ctx, order.ID.String()))
	assert.ErrorIs(t, service.Start(ctx, order.ID.String()), domain.ErrOrderNotPending)
	assert.Equal(t, domain.OrderInProgress, orderStatus(t, db, order.ID))
}

func TestCompleteInProgressOrder(t *testing.T) {
	service, db := setupKitchenTest(t)
	ctx := context.Background()
	order := seedOrder(t, db, domain.OrderInProgress)

	require.NoError(t, service.Complete(ctx, order.ID.String()))
	assert.Equal(t, domain.OrderCompleted, orderStatus(t, db, order.ID))
}

func TestCompletePendingOrderConflicts(t *testing.T) {
	service, db := setupKitchenTest(t)
	order := seedOrder(t, db, domain.OrderPending)

	err := service.Complete(context.Background(), order.ID.String())
	assert.ErrorIs(t, err, domain.ErrOrderNotInProgress)
	assert.Equal(t, domain.OrderPending, orderStatus(t, db, order.ID))
}

func TestCompletedOrderIsTerminal(t *testing.T) {
	service, db := setupKitchenTest(t)
	ctx := context.Background()
	order := seedOrder(t, db, domain.OrderCompleted)

	assert.ErrorIs(t, service.Start(ctx, order.ID.String()), domain.ErrOrderNotPending)
	assert.ErrorIs(t, service.Complete(ctx, order.ID.String()), domain.ErrOrderNotInProgress)
	assert.Equal(t, domain.OrderCompleted, orderStatus(t, db, order.ID))
}

func TestStartUnknownOrder(t *testing.T) {
	service, _ := setupKitchenTest(t)
	err := service.Start(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestListByStatusResolvesItemNames(t *testing.T) {
	service, db := setupKitchenTest(t)
	ctx := context.Background()
	pending := seedOrder(t, db, domain.OrderPending)
	seedOrder(t, db, domain.OrderCompleted)

	orders, err := service.ListByStatus(ctx, domain.OrderPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pending.ID.String(), orders[0].OrderID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Masala Dosa", orders[0].Items[0].ItemName)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestGetOrderUnknown(t *testing.T) {
	service, _ := setupKitchenTest(t)
	_, err := service.GetOrder(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
