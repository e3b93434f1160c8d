package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gen2brain/audiodesc"
)

func main() {
	var (
		raw       string
		bigEndian bool
		verbose   bool
	)

	flag.StringVar(&raw, "raw", "", "Describe a 40-byte AudioStreamBasicDescription given as hex instead of a file")
	flag.BoolVar(&bigEndian, "be", false, "Decode -raw as big-endian (default: host byte order)")
	flag.BoolVar(&verbose, "v", false, "Also print the individual fields")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.{wav,caf,mp3}>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nDescribes the audio stream format of a file or a raw stream description.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if raw != "" {
		order := audiodesc.NativeByteOrder()
		if bigEndian {
			order = binary.BigEndian
		}

		b, err := hex.DecodeString(strings.ReplaceAll(raw, " ", ""))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding hex: %v\n", err)
			os.Exit(1)
		}

		desc, err := audiodesc.ParseStreamDescription(b, order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing description: %v\n", err)
			os.Exit(1)
		}

		printDescription("Format:", desc, verbose)

		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	src, err := openSource(path, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	desc, err := src.Description()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Filename:  %s\n", path)
	printDescription("Format:", desc, verbose)

	if decoded, ok := src.Decoded(); ok {
		printDescription("Decoded:", decoded, verbose)
	}

	if d := src.Duration(); d > 0 {
		fmt.Printf("Duration:  %s\n", formatDuration(d))
	}
}

func printDescription(label string, desc audiodesc.StreamDescription, verbose bool) {
	fmt.Printf("%-10s %s\n", label, desc)

	if !verbose {
		return
	}

	fmt.Printf("  %-18s %g\n", "SampleRate", desc.SampleRate)
	fmt.Printf("  %-18s %s\n", "FormatID", desc.FormatID)
	fmt.Printf("  %-18s %s\n", "FormatFlags", audiodesc.Hex32(desc.FormatFlags))
	fmt.Printf("  %-18s %d\n", "BytesPerPacket", desc.BytesPerPacket)
	fmt.Printf("  %-18s %d\n", "FramesPerPacket", desc.FramesPerPacket)
	fmt.Printf("  %-18s %d\n", "BytesPerFrame", desc.BytesPerFrame)
	fmt.Printf("  %-18s %d\n", "ChannelsPerFrame", desc.ChannelsPerFrame)
	fmt.Printf("  %-18s %d\n", "BitsPerChannel", desc.BitsPerChannel)
	fmt.Printf("  %-18s %v\n", "NativeEndian", desc.IsNativeEndian())
}

// formatDuration formats a time.Duration into a more readable HH:MM:SS.ms format.
func formatDuration(d time.Duration) string {
	nanos := d.Nanoseconds() % 1e9
	millis := nanos / 1e6

	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
