// Package kernel holds the value objects shared by every aggregate of the
// marketplace model. Today that is the UUID identifier; anything added here
// must be immutable and free of persistence concerns.
package kernel
