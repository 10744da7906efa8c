// Package store defines the persistence interfaces of the meetup API and
// the sentinel errors shared by every implementation. Concrete Postgres
// implementations live in internal/platform/postgres.
package store
