package menu

import (
	"context"
	"testing"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMenuTest(t *testing.T) (MenuService, MenuRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.MenuItem{}, &entities.MenuItemLog{}))

	repo := NewMenuRepository(db)
	return NewMenuService(repo), repo
}

func TestUpsertCreatesItemWithLog(t *testing.T) {
	service, repo := setupMenuTest(t)
	ctx := context.Background()

	res, created, err := service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Crisp dosa with potato filling",
		Category:    "South Indian",
		Price:       120,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Masala Dosa", res.Name)
	assert.Equal(t, "₹120.00", res.Price)

	logs, err := repo.GetLogs(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "added", logs[0].Action)
}

func TestUpsertSameNameUpdatesInPlace(t *testing.T) {
	service, _ := setupMenuTest(t)
	ctx := context.Background()

	first, created, err := service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Crisp dosa with potato filling",
		Category:    "South Indian",
		Price:       120,
	})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Now with extra chutney",
		Category:    "South Indian",
		Price:       140,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "₹140.00", second.Price)

	items, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpsertKeepsStoredImageWhenNoneUploaded(t *testing.T) {
	service, repo := setupMenuTest(t)
	ctx := context.Background()

	res, _, err := service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Crisp dosa with potato filling",
		Category:    "South Indian",
		Price:       120,
	})
	require.NoError(t, err)

	item, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	item.Image = []byte{0xFF, 0xD8, 0xFF}
	require.NoError(t, repo.Update(ctx, item))

	_, _, err = service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Price bump",
		Category:    "South Indian",
		Price:       130,
	})
	require.NoError(t, err)

	item, err = repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, item.Image)
}

func TestUpsertRejectsNonPositivePrice(t *testing.T) {
	service, _ := setupMenuTest(t)

	_, _, err := service.UpsertByName(context.Background(), domain.UpsertMenuItemRequest{
		Name:        "Free Lunch",
		Description: "There is none",
		Category:    "Specials",
		Price:       0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestGetUnknownItem(t *testing.T) {
	service, _ := setupMenuTest(t)

	_, err := service.Get(context.Background(), "3f0b8a1e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestDeleteRemovesItemAndLogs(t *testing.T) {
	service, repo := setupMenuTest(t)
	ctx := context.Background()

	res, _, err := service.UpsertByName(ctx, domain.UpsertMenuItemRequest{
		Name:        "Masala Dosa",
		Description: "Crisp dosa with potato filling",
		Category:    "South Indian",
		Price:       120,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, res.ID))

	_, err = service.Get(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	logs, err := repo.GetLogs(ctx, res.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	service, _ := setupMenuTest(t)
	assert.ErrorIs(t, service.Delete(context.Background(), "not-a-uuid"), domain.ErrParseUUID)
}

func TestListOrdersByCategoryThenName(t *testing.T) {
	service, _ := setupMenuTest(t)
	ctx := context.Background()

	for _, seed := range []domain.UpsertMenuItemRequest{
		{Name: "Lassi", Description: "Sweet", Category: "Drinks", Price: 60},
		{Name: "Masala Dosa", Description: "Crisp", Category: "South Indian", Price: 120},
		{Name: "Chaas", Description: "Salted", Category: "Drinks", Price: 40},
	} {
		_, _, err := service.UpsertByName(ctx, seed)
		require.NoError(t, err)
	}

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Chaas", items[0].Name)
	assert.Equal(t, "Lassi", items[1].Name)
	assert.Equal(t, "Masala Dosa", items[2].Name)
}
