// Package postfilter removes energy above 19.5 kHz from full-band capture
// audio before encoding.
//
// A PostFilter keeps one biquad cascade per channel. Only 48 kHz has a
// coefficient table, so CreateIfNeeded returns nil at every other rate and
// callers skip the stage.
package postfilter
