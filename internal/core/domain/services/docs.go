// Package services contains stateless domain services operating across
// aggregates: the verification gate that validates measured parameters
// against a stage's schema.
package services
