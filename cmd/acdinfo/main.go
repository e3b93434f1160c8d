package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/audiodesc"
)

func main() {
	var (
		typ          string
		subType      string
		manufacturer string
		flags        uint
		flagsMask    uint
		raw          string
		bigEndian    bool
		showFlags    bool
	)

	flag.StringVar(&typ, "type", "", "Component type, e.g. aufx or 0x61756678")
	flag.StringVar(&subType, "subtype", "", "Component subtype, e.g. dely")
	flag.StringVar(&manufacturer, "manufacturer", "appl", "Component manufacturer")
	flag.UintVar(&flags, "flags", 0, "Component flags")
	flag.UintVar(&flagsMask, "mask", 0, "Component flags mask")
	flag.StringVar(&raw, "raw", "", "Describe a 20-byte AudioComponentDescription given as hex instead")
	flag.BoolVar(&bigEndian, "be", false, "Decode -raw as big-endian (default: host byte order)")
	flag.BoolVar(&showFlags, "show-flags", false, "Include the flag words in the output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Describes an audio component by its type, subtype and manufacturer codes.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	var desc audiodesc.ComponentDescription

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

		desc, err = audiodesc.ParseComponentDescription(b, order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing description: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(desc.Describe(showFlags))

		return
	}

	if typ == "" || subType == "" {
		flag.Usage()
		os.Exit(1)
	}

	codes := []struct {
		name string
		text string
		dst  *audiodesc.FourCC
	}{
		{"type", typ, &desc.Type},
		{"subtype", subType, &desc.SubType},
		{"manufacturer", manufacturer, &desc.Manufacturer},
	}

	for _, c := range codes {
		code, err := audiodesc.ParseFourCC(c.text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid %s: %v\n", c.name, err)
			os.Exit(1)
		}

		*c.dst = code
	}

	desc.Flags = uint32(flags)
	desc.FlagsMask = uint32(flagsMask)

	fmt.Println(desc.Describe(showFlags || flags != 0 || flagsMask != 0))
}
