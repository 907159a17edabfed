// Package kernel contains shared domain primitives used by all aggregates:
// the UUID identity value object. Domain packages depend on kernel; kernel
// depends on nothing above internal/pkg.
package kernel
