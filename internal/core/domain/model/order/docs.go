// Package order contains the production order aggregate: the lifecycle
// status machine (Pending, InProgress, Completed), the billing sub-state
// (None, PendingBilling, Billed), and the verification value objects
// (ParameterSet, VerifiedRecord) attached to an order at admission.
//
// The aggregate enforces its own transition rules; cross-aggregate effects
// (stage slot acquisition and release) are coordinated by the command
// handlers within one unit of work.
package order
