// Package loyalty models customer rewards earned from delivered orders.
//
// A Credit is recorded when an order is delivered and later applied to the
// customer's Account. Tiers are derived from the number of delivered orders.
package loyalty
