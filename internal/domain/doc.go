// Package domain contains the core entities of the meetup API and their
// validation rules. Entities carry no persistence or transport concerns;
// stores and handlers depend on this package, never the other way around.
package domain
