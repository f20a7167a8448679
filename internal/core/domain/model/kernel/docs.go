// Package kernel contains shared value objects used across domain aggregates:
// UUID identifiers and Money amounts. Value objects here are immutable, validated
// at construction, and carry no references back to live entities.
package kernel
