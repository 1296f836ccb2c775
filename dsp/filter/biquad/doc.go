// Package biquad provides cascaded second-order IIR filters in float32.
//
// A [Section] implements direct form 1: separate two-sample input and output
// delay lines, evaluated as
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a0*y[n-1] - a1*y[n-2]
//
// Outputs are bit-reproducible across architectures; the block kernels are
// selected once per process from the CPU features but never change results.
//
// A [Cascade] chains any number of sections, each consuming the previous
// section's output. Filters are not safe for concurrent use: give every
// stream or channel its own instance.
//
// Coefficient tables are plain data, normally produced offline with a filter
// design tool (scipy.signal sos output maps onto [Coefficients] with the
// leading denominator coefficient dropped).
package biquad
