// Package pgtest starts a throwaway PostgreSQL container with the
// application schema for integration suites.
package pgtest

import (
	"context"
	"time"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/migrations"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies all migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{Container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return d, err
	}

	if err = migrations.Up(d.DSN); err != nil {
		return d, err
	}

	d.DB, err = gorm.Open(gorm_postgres.Open(d.DSN), &gorm.Config{TranslateError: true})
	return d, err
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties every application table and resets sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE loyalty_credits, order_items, orders, customers, menu_items, restaurants
		RESTART IDENTITY CASCADE`).Error
}

// Restaurant returns an active restaurant in central Moscow with the
// default delivery terms: fee 150, free from 1000, 15 km, 30 minutes.
func Restaurant(name string) catalogrepo.RestaurantDTO {
	return catalogrepo.RestaurantDTO{
		Name:                  name,
		Description:           name + " kitchen",
		Phone:                 "+74950000000",
		Address:               "Tverskaya 1",
		Latitude:              55.75,
		Longitude:             37.61,
		DeliveryFee:           decimal.NewFromInt(150),
		FreeDeliveryThreshold: decimal.NewFromInt(1000),
		MaxDeliveryDistance:   15,
		AvgDeliveryTime:       30,
		IsActive:              true,
		Rating:                4.5,
	}
}

// MenuItem returns an available non-vegetarian item.
func MenuItem(restaurantID int64, name string, price int64) catalogrepo.MenuItemDTO {
	return catalogrepo.MenuItemDTO{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        decimal.NewFromInt(price),
		IsAvailable:  true,
	}
}

// Seed inserts rows built by Restaurant and MenuItem (or any other DTO) and
// fills in their generated ids.
func (d *Database) Seed(ctx context.Context, rows ...any) error {
	for _, row := range rows {
		if err := d.DB.WithContext(ctx).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
