// Package services provides domain services of the ordering core that do not
// belong to a single aggregate.
//
// The package includes:
//   - GeoEstimator: delivery fee, distance and ETA from restaurant terms
//   - OrderPricer: validates requested lines against the catalog and prices
//     an order before it is created
package services
