// Package kernel holds the value objects shared by every aggregate of the
// ordering core.
//
// The package includes:
//   - UUID: identity of orders, order lines and loyalty credits
//   - Coordinates: a validated latitude/longitude pair with great-circle
//     distance, used for delivery addresses and restaurant locations
//
// Values are immutable and must be created through their constructors; the
// zero value of each type fails Validate.
package kernel
