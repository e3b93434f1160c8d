package audiodesc

import "strings"

// ComponentDescription identifies an audio unit, mirroring AudioComponentDescription.
type ComponentDescription struct {
	Type         FourCC
	SubType      FourCC
	Manufacturer FourCC
	Flags        uint32
	FlagsMask    uint32
}

// Describe returns the manufacturer, type and subtype names.
// With includeFlags the flag words are appended in hex.
func (c ComponentDescription) Describe(includeFlags bool) string {
	reg := DefaultRegistry()

	var b strings.Builder

	b.WriteString("Manufacturer: " + reg.Manufacturers.Name(uint32(c.Manufacturer)))
	b.WriteString(", Type: " + reg.UnitTypes.Name(uint32(c.Type)))
	b.WriteString(", SubType: " + reg.UnitSubTypes.Name(uint32(c.SubType)))

	if includeFlags {
		b.WriteString(", Flags: " + Hex32(c.Flags))
		b.WriteString(", FlagsMask: " + Hex32(c.FlagsMask))
	}

	return b.String()
}

// String returns the description without flags.
func (c ComponentDescription) String() string {
	return c.Describe(false)
}
