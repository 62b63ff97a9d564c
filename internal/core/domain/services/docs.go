// Package services provides domain services that apply the policy registry to
// aggregates. They hold no state besides the registry and never touch storage.
//
// The package includes:
//   - OrderLifecycle: authorizes and applies order status transitions
//   - PromotionGate: decides whether a role promotion may proceed
package services
