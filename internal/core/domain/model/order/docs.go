// Package order implements the Order aggregate of the ordering core: its
// priced lines, the status lifecycle and the tracking timeline.
//
// The package includes:
//   - Order: aggregate root holding the monetary breakdown, delivery details
//     and per-step timestamps
//   - Line: a position with name and price snapshots taken at creation
//   - Status: the lifecycle table and transition checks
//   - Number: the customer-facing order reference
//   - Milestone: one step of the derived tracking timeline
//
// Orders are created PENDING with a zero discount. Status changes follow
//
//	pending -> confirmed -> preparing -> ready -> delivering -> delivered
//
// with cancellation allowed from pending and confirmed only. Any other
// request fails with ErrIllegalTransition and does not mutate the order.
package order
