// Package wavio reads and writes PCM WAV files for the spectra tools.
//
// Decoding and encoding go through github.com/go-audio/wav. Only integer PCM
// with one or two channels at 8, 16 or 32 bits per sample is accepted;
// anything else fails with [ErrUnsupportedFormat]. Samples are held
// interleaved and signed at their native bit depth, so 8-bit data, which WAV
// stores unsigned, is recentred around zero on read and shifted back on
// write.
package wavio
