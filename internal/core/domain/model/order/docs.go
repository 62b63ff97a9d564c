// Package order provides the Order aggregate and its fulfillment status machine.
//
// The package includes:
//   - Order: the aggregate root owning lines, status and payment method
//   - Status: the fulfillment state, persisted by name
//   - PaymentMethod: the payment tag attached to an order
//   - HistoryEntry: the audit record of an applied transition
//
// Which edges between statuses are legal is not decided here. Order.Transition
// consults a TransitionRules implementation, normally the policy registry, so
// a change of policy never requires touching the aggregate.
//
// Fulfillment flow:
//
//	PENDING ──> CONFIRMED ──> PROCESSING ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │              │                 │
//	   └────────────┴──────────────┴─────────────────┴──────> CANCELLED
package order
