// Package channel dispatches mono and stereo sample containers to
// single-channel processing functions.
//
// A [Container] is mono when it carries only Samples and stereo when both
// Left and Right are set. [Map] runs a per-channel function over whichever
// layout is present and reassembles the result; left and right never
// interact, so a stereo result always equals two independent mono runs.
package channel
