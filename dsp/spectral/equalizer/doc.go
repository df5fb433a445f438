// Package equalizer applies a threshold-frequency gain table to a spectrum.
//
// Each [Band] names an upper frequency bound and a linear gain. Bands are
// sorted by ascending threshold when the equalizer is built, and a bin at f Hz
// takes the gain of the first band whose threshold is >= f. Bins above every
// threshold pass unchanged. Bands that share a threshold keep their listed
// order, so the first of them wins.
package equalizer
