package filter

import (
	"errors"

	"github.com/cwbudde/algo-spectral/dsp/channel"
)

// ErrNoFilter is returned by a Handler without an active filter.
var ErrNoFilter = errors.New("filter: no active filter")

// Handler applies one active filter to mono or stereo containers. The filter
// can be swapped between calls. A Handler is not safe for concurrent
// SetFilter and Apply.
type Handler struct {
	filter Filter
}

// NewHandler creates a handler with f active.
func NewHandler(f Filter) *Handler {
	return &Handler{filter: f}
}

// SetFilter replaces the active filter.
func (h *Handler) SetFilter(f Filter) {
	h.filter = f
}

// Filter returns the active filter.
func (h *Handler) Filter() Filter {
	return h.filter
}

// Apply filters every channel of c independently.
func (h *Handler) Apply(c channel.Container, sampleRate float64) (channel.Container, error) {
	if h.filter == nil {
		return channel.Container{}, ErrNoFilter
	}

	f := h.filter
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return f.Apply(samples, sampleRate)
	})
}
