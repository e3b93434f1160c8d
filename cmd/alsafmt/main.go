package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gen2brain/audiodesc"
)

func main() {
	var (
		channels int
		rate     int
		format   string
	)

	flag.IntVar(&channels, "channels", 2, "The amount of channels per frame")
	flag.IntVar(&rate, "rate", 48000, "The amount of frames per second")
	flag.StringVar(&format, "format", "", "Only describe this ALSA format, e.g. S24_3LE")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Prints the stream description of ALSA sample formats.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if channels <= 0 || rate <= 0 {
		fmt.Fprintln(os.Stderr, "Error: channels and rate must be positive.")
		os.Exit(1)
	}

	// Sort keys for consistent output
	var keys []int
	for k, name := range audiodesc.ALSAFormatNames {
		if format == "" || name == format {
			keys = append(keys, int(k))
		}
	}

	if len(keys) == 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown ALSA format '%s'.\n", format)
		os.Exit(1)
	}

	sort.Ints(keys)

	for _, k := range keys {
		f := audiodesc.ALSAFormat(k)

		desc, err := audiodesc.FromALSAFormat(f, uint32(channels), uint32(rate))
		if errors.Is(err, audiodesc.ErrUnsupportedALSAFormat) {
			fmt.Printf("%18s: (no stream description)\n", f)
			continue
		}

		fmt.Printf("%18s: %s\n", f, desc)
	}
}
