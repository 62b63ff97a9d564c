// Package delivery provides the Delivery job attached to an order.
//
// A job is posted in AWAITING_PICKUP, claimed by exactly one rider or agency
// and then advanced by that actor along a closed forward chain:
//
//	AWAITING_PICKUP ──> PICKED_UP ──> ON_THE_WAY ──> DELIVERED
//
// Only the last three statuses can be requested. AWAITING_PICKUP is the
// initial state and is never a valid target.
package delivery
