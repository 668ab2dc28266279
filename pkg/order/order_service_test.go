package order

import (
	"context"
	"testing"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/Krithish69/Restaurant/pkg/menu"
	"github.com/Krithish69/Restaurant/pkg/table"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Customer{},
		&entities.Table{},
		&entities.MenuItem{},
		&entities.Order{},
		&entities.OrderItem{},
	))

	service := NewOrderService(
		NewOrderRepository(db),
		menu.NewMenuRepository(db),
		table.NewTableRepository(db),
	)
	return service, db
}

func seedCatalog(t *testing.T, db *gorm.DB) (entities.Table, entities.MenuItem, entities.MenuItem) {
	t.Helper()
	tbl := entities.Table{ID: uuid.New(), TableNumber: 3, Status: domain.TableOccupied}
	require.NoError(t, db.Create(&tbl).Error)

	dosa := entities.MenuItem{ID: uuid.New(), Name: "Masala Dosa", Category: "South Indian", Price: 120}
	lassi := entities.MenuItem{ID: uuid.New(), Name: "Lassi", Category: "Drinks", Price: 60}
	require.NoError(t, db.Create(&dosa).Error)
	require.NoError(t, db.Create(&lassi).Error)
	return tbl, dosa, lassi
}

func TestPlaceOrderComputesTotalServerSide(t *testing.T) {
	service, db := setupOrderTest(t)
	ctx := context.Background()
	_, dosa, lassi := seedCatalog(t, db)

	res, err := service.PlaceOrder(ctx, uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items: []domain.OrderLineRequest{
			{MenuItemID: dosa.ID.String(), Quantity: 2},
			{MenuItemID: lassi.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, res.TotalAmount)
	assert.Contains(t, res.BillNumber, domain.BillPrefix)

	var order entities.Order
	require.NoError(t, db.Where("bill_number = ?", res.BillNumber).First(&order).Error)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 3, order.TableNumber)
	assert.Nil(t, order.SettledAt)

	var items []entities.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	assert.Len(t, items, 2)
}

func TestPlaceOrderSnapshotsUnitPrice(t *testing.T) {
	service, db := setupOrderTest(t)
	ctx := context.Background()
	_, dosa, _ := seedCatalog(t, db)

	res, err := service.PlaceOrder(ctx, uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items:       []domain.OrderLineRequest{{MenuItemID: dosa.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	// catalog price changes must not rewrite already placed orders
	require.NoError(t, db.Model(&entities.MenuItem{}).
		Where("id = ?", dosa.ID).
		Update("price", 999).Error)

	var order entities.Order
	require.NoError(t, db.Where("bill_number = ?", res.BillNumber).First(&order).Error)
	var item entities.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.Equal(t, 120.0, item.UnitPrice)
	assert.Equal(t, 120.0, order.TotalAmount)
}

func TestPlaceOrderRollsBackOnLineFailure(t *testing.T) {
	service, db := setupOrderTest(t)
	ctx := context.Background()
	_, dosa, _ := seedCatalog(t, db)

	// a duplicated cart line violates the unique order/menu-item pair
	// partway through the transaction
	_, err := service.PlaceOrder(ctx, uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items: []domain.OrderLineRequest{
			{MenuItemID: dosa.ID.String(), Quantity: 1},
			{MenuItemID: dosa.ID.String(), Quantity: 2},
		},
	})
	require.Error(t, err)

	var orders, items int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, items)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	service, db := setupOrderTest(t)
	seedCatalog(t, db)

	_, err := service.PlaceOrder(context.Background(), uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items:       []domain.OrderLineRequest{},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestPlaceOrderUnknownTable(t *testing.T) {
	service, db := setupOrderTest(t)
	_, dosa, _ := seedCatalog(t, db)

	_, err := service.PlaceOrder(context.Background(), uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 99,
		Items:       []domain.OrderLineRequest{{MenuItemID: dosa.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestPlaceOrderUnknownMenuItem(t *testing.T) {
	service, db := setupOrderTest(t)
	seedCatalog(t, db)

	_, err := service.PlaceOrder(context.Background(), uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items:       []domain.OrderLineRequest{{MenuItemID: uuid.NewString(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestOrdersForTableAggregatesLines(t *testing.T) {
	service, db := setupOrderTest(t)
	ctx := context.Background()
	tbl, dosa, lassi := seedCatalog(t, db)

	_, err := service.PlaceOrder(ctx, uuid.NewString(), domain.PlaceOrderRequest{
		TableNumber: 3,
		Items: []domain.OrderLineRequest{
			{MenuItemID: dosa.ID.String(), Quantity: 2},
			{MenuItemID: lassi.ID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	res, err := service.OrdersForTable(ctx, tbl.ID.String())
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 420.0, res.TotalAmount)
}

func TestOrdersForTableEmpty(t *testing.T) {
	service, db := setupOrderTest(t)
	tbl, _, _ := seedCatalog(t, db)

	res, err := service.OrdersForTable(context.Background(), tbl.ID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.Zero(t, res.TotalAmount)
}
