// Package filter provides brick-wall spectral filters.
//
// Each filter transforms the buffer, rewrites bins by frequency and
// transforms back. Frequencies are folded about Nyquist, so a bin and its
// mirror are always kept or removed together:
//
//   - [HighPass]: zero bins below the cutoff
//   - [LowPass]: zero bins above the cutoff
//   - [BandPass]: zero bins outside [low, high]
//   - [BandStop]: zero bins inside [low, high]
//   - [Peaking]: scale bins within bandwidth/2 of the center
//   - [Shelving]: scale bins on one side of the cutoff
//   - [AllPass]: shift the phase of every component, keeping magnitude
//
// Every filter is also a spectral.Shaper, so several of them can share one
// transform round inside a spectral.Chain. [Spec] and [New] build filters from
// plain descriptors, and [Handler] applies a swappable filter to mono or
// stereo containers.
package filter
