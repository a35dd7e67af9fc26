package catalogrepo_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogStoreIntegrationTestSuite struct {
	suite.Suite
	pg    *pgtest.Database
	store *catalogrepo.GormCatalogStore
}

func (suite *CatalogStoreIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.pg = pg
	suite.Require().NoError(err)
	suite.store = catalogrepo.NewGormCatalogStore(pg.DB)
}

func (suite *CatalogStoreIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CatalogStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *CatalogStoreIntegrationTestSuite) TestGetRestaurant() {
	ctx := context.Background()
	r := pgtest.Restaurant("Pizza Roma")
	suite.Require().NoError(suite.pg.Seed(ctx, &r))

	got, err := suite.store.GetRestaurant(ctx, r.ID)

	suite.Require().NoError(err)
	suite.Equal("Pizza Roma", got.Profile().Name)
	suite.Equal("Tverskaya 1", got.Profile().Address)
	suite.True(got.IsActive())
	suite.InDelta(4.5, got.Rating(), 1e-9)
	suite.True(decimal.NewFromInt(150).Equal(got.Terms().Fee()))
	suite.True(decimal.NewFromInt(1000).Equal(got.Terms().FreeDeliveryThreshold()))
	suite.InDelta(15.0, got.Terms().MaxDistanceKm(), 1e-9)
	suite.Equal(30, got.Terms().AvgDeliveryMinutes())
	suite.InDelta(55.75, got.Location().Latitude(), 1e-9)
}

func (suite *CatalogStoreIntegrationTestSuite) TestGetRestaurant_InactiveIsReturned() {
	ctx := context.Background()
	r := pgtest.Restaurant("Closed")
	r.IsActive = false
	suite.Require().NoError(suite.pg.Seed(ctx, &r))

	got, err := suite.store.GetRestaurant(ctx, r.ID)

	suite.Require().NoError(err)
	suite.False(got.IsActive())
	suite.ErrorIs(got.EnsureAcceptsOrders(), restaurant.ErrRestaurantNotFound)
}

func (suite *CatalogStoreIntegrationTestSuite) TestGetRestaurant_NotFound() {
	_, err := suite.store.GetRestaurant(context.Background(), 999)

	suite.Require().ErrorIs(err, restaurant.ErrRestaurantNotFound)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogStoreIntegrationTestSuite) TestGetMenuItem() {
	ctx := context.Background()
	r := pgtest.Restaurant("Pizza Roma")
	suite.Require().NoError(suite.pg.Seed(ctx, &r))
	item := pgtest.MenuItem(r.ID, "Margherita", 450)
	item.IsVegetarian = true
	item.SortOrder = 3
	suite.Require().NoError(suite.pg.Seed(ctx, &item))

	got, err := suite.store.GetMenuItem(ctx, r.ID, item.ID)

	suite.Require().NoError(err)
	suite.Equal("Margherita", got.Name())
	suite.Equal(r.ID, got.RestaurantID())
	suite.True(decimal.NewFromInt(450).Equal(got.Price()))
	suite.True(got.IsAvailable())
	suite.True(got.IsVegetarian())
	suite.Equal(3, got.SortOrder())
}

func (suite *CatalogStoreIntegrationTestSuite) TestGetMenuItem_OtherRestaurant() {
	ctx := context.Background()
	first := pgtest.Restaurant("Pizza Roma")
	second := pgtest.Restaurant("Sushi Bar")
	suite.Require().NoError(suite.pg.Seed(ctx, &first, &second))
	item := pgtest.MenuItem(second.ID, "Roll", 390)
	suite.Require().NoError(suite.pg.Seed(ctx, &item))

	_, err := suite.store.GetMenuItem(ctx, first.ID, item.ID)

	suite.Require().ErrorIs(err, restaurant.ErrItemNotFound)
}

func TestCatalogStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogStoreIntegrationTestSuite))
}
