// Command spectra runs frequency-domain effects over PCM WAV files.
//
// Usage:
//
//	spectra <command> [flags]
//
// Every effect command reads --input and writes --output. A YAML pipeline
// document chains several effects; consecutive spectral effects share one
// transform round.
//
// Examples:
//
//	spectra filter lowpass --cutoff 4000 -i in.wav -o out.wav
//	spectra eq --band 120=0.5 --band 8000=1.2 -i in.wav -o out.wav
//	spectra dehum --hum 60 --width 2 -i in.wav -o out.wav
//	spectra denoise --stage amplitude=100 --stage db=20 -i in.wav -o out.wav
//	spectra resample --rate 48000 --method cubic -i in.wav -o out.wav
//	spectra run --config pipeline.yaml
//	spectra info in.wav
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
