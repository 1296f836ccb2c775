// Package tone generates and measures sinusoidal test signals.
//
// It backs the frequency-selectivity checks for the post filter and
// decimator: a phase-continuous float32 generator, mean-power helpers, and
// two tone level estimators. Detector evaluates a single DFT bin with the
// Goertzel recurrence; SpectrumLevelDB integrates the main lobe of a
// Hann-windowed FFT.
//
// Levels are powers in dB relative to a full-scale DC signal, so a
// full-scale sine reads about -3.01 dB.
package tone
