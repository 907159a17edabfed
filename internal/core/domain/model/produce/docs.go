// Package produce models the physical output of a completed order: packages
// with measured dimensions and the label data handed to the document
// generator.
package produce
