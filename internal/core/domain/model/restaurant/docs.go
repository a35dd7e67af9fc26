// Package restaurant provides the read-only catalog model used by the
// ordering core: restaurants with their delivery terms and menu items.
//
// The package includes:
//   - Restaurant: profile, location, delivery terms, active flag and rating
//   - DeliveryTerms: flat fee, free-delivery threshold, maximum distance and
//     average delivery time
//   - MenuItem: a priced dish with availability and vegetarian flags
//
// The catalog is never modified by the ordering core; instances are restored
// from storage through RestoreRestaurant and RestoreMenuItem.
package restaurant
