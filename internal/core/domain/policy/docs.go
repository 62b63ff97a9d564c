// Package policy provides the Registry, the single source of marketplace rules:
//
//   - the order status machine and, per edge, which actor relations may apply it
//   - the delivery status chain
//   - the promotion path of every role
//   - the set of roles a customer may request without an administrator
//
// A Registry is built once at startup, never mutated and safe for concurrent
// use. Services receive it at construction; nothing else in the codebase
// hard-codes a transition or a role check.
package policy
