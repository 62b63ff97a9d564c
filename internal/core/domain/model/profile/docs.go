// Package profile provides the role-specific profiles created by promotion.
//
// Each promotable role owns exactly one profile kind and every user holds at
// most one profile of each kind. Details carry the caller supplied input for a
// kind and build the matching Profile once the promotion has been authorized.
package profile
