// Package buffer provides an owned multi-channel float32 sample buffer and a
// pool for allocation-free reuse in real-time processing loops.
//
// Buffer stores channels back to back in one allocation, which is the
// layout the filters in this module work on. Use View to hand it to code that
// accepts an audioview.Deinterleaved, and the Interleaved helpers to exchange
// frames with capture or playout code.
package buffer
