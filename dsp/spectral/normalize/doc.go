// Package normalize scales a signal so its spectral peak hits a target level.
package normalize
