// Package hum removes mains hum and its harmonics with a periodic notch.
//
// A bin at f Hz is zeroed when f lies within the notch width of any multiple
// of the hum frequency, including DC. Bin frequencies are folded about
// Nyquist, so each notch also clears the mirror bins and a second pass
// changes nothing. One pass covers every harmonic up to Nyquist.
package hum
