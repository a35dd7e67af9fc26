package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("zero limit selects the default", func(t *testing.T) {
		p, err := queries.NewPage(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Skip())
		assert.Equal(t, queries.DefaultPageLimit, p.Limit())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		p, err := queries.NewPage(40, queries.MaxPageLimit)
		require.NoError(t, err)
		assert.Equal(t, 40, p.Skip())
		assert.Equal(t, 100, p.Limit())

		p, err = queries.NewPage(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Limit())
	})

	tests := []struct {
		name        string
		skip, limit int
	}{
		{"negative skip", -1, 10},
		{"negative limit", 0, -5},
		{"limit above max", 0, 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewPage(tt.skip, tt.limit)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestQueryConstructors(t *testing.T) {
	t.Run("user id must be positive", func(t *testing.T) {
		_, err := queries.NewListUserOrdersQuery(0, 0, 10)
		assert.ErrorIs(t, err, queries.ErrUserIDIsInvalid)

		_, err = queries.NewGetLoyaltyQuery(-3)
		assert.ErrorIs(t, err, queries.ErrUserIDIsInvalid)
	})

	t.Run("restaurant id must be positive", func(t *testing.T) {
		_, err := queries.NewGetRestaurantQuery(0)
		assert.ErrorIs(t, err, queries.ErrRestaurantIDIsInvalid)

		_, err = queries.NewListMenuItemsQuery(0, queries.DefaultMenuFilter())
		assert.ErrorIs(t, err, queries.ErrRestaurantIDIsInvalid)
	})

	t.Run("max distance must be positive", func(t *testing.T) {
		zero := 0.0
		_, err := queries.NewListRestaurantsQuery("", nil, &zero, 0, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("search is trimmed", func(t *testing.T) {
		q, err := queries.NewListRestaurantsQuery("  pizza ", nil, nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "pizza", q.Search())

		m, err := queries.NewListMenuItemsQuery(1, queries.MenuFilter{Search: " soup\t"})
		require.NoError(t, err)
		assert.Equal(t, "soup", m.Filter().Search)
		assert.False(t, m.Filter().AvailableOnly)
	})

	t.Run("zero value queries are rejected", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
		assert.ErrorIs(t, queries.TrackOrderQuery{}.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
		assert.ErrorIs(t, queries.ListUserOrdersQuery{}.Validate(), queries.ErrListUserOrdersQueryIsNotConstructed)
		assert.ErrorIs(t, queries.ListRestaurantsQuery{}.Validate(), queries.ErrListRestaurantsQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetRestaurantQuery{}.Validate(), queries.ErrGetRestaurantQueryIsNotConstructed)
		assert.ErrorIs(t, queries.ListMenuItemsQuery{}.Validate(), queries.ErrListMenuItemsQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetLoyaltyQuery{}.Validate(), queries.ErrGetLoyaltyQueryIsNotConstructed)
	})
}
