// Package audioview provides non-owning views over multi-channel sample
// buffers.
//
// Three layouts are supported:
//
//   - [Mono]: one contiguous channel.
//   - [Interleaved]: the samples of every channel sit side by side per frame,
//     so sample i of channel c lives at i*NumChannels()+c.
//   - [Deinterleaved]: each channel's samples are contiguous. The channels
//     are either packed back to back in one buffer or held as separate slices;
//     [Deinterleaved.Channel] hides which.
//
// Views never allocate or own sample memory. Copying a view value copies its
// shape only; [CopySamples] and [ClearSamples] move or zero the samples
// themselves. A view is invalidated as soon as the backing slice is
// reallocated.
//
// Every view implements [View], so code that only needs the shape (channel
// count, frames) can be written once for all three kinds. Violating a
// documented precondition panics: it is a bug in the caller.
package audioview
