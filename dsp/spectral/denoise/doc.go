// Package denoise implements threshold-based spectral gating.
//
// A [Reducer] runs an ordered list of [Stage] values over every bin. Each
// stage measures the bin with its [Method] and zeroes it when the measure
// falls below the stage threshold; the first stage that fires wins and later
// stages never see the bin. Bins no stage rejects pass unchanged.
//
// [SoftGate] is the gentler variant: bins below a dB threshold are
// attenuated in proportion to how far below it they sit instead of removed.
package denoise
