// Package main provides the entry point for the food table order service.
// It runs a Fiber based REST API through which users form groups, place a
// shared restaurant order per group and day, and attach their own line items
// to it. The application uses gorm for data persistence against MySQL,
// Postgres or SQLite and is configured through a TOML file with optional
// JSON environment overrides.
package main
