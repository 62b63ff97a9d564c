// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read the tables directly with SQL,
// returning read models shaped for the HTTP layer and the jobs.
package queries
