// Package decimate reduces the rate of echo-canceller render blocks by a
// factor of 4 or 8.
//
// Each 64-sample block is filtered by an anti-aliasing cascade and a
// noise-reduction cascade, then every factor-th sample is kept. The filter
// state carries across blocks, so a Decimator must see a contiguous stream.
package decimate
