package audiodesc

import (
	"slices"
	"sync"
)

// CodeTable maps known 32-bit codes to short names. It is never modified after construction,
// so it can be read from any number of goroutines without locking.
type CodeTable struct {
	names map[uint32]string
}

func newCodeTable(names map[FourCC]string) CodeTable {
	t := CodeTable{names: make(map[uint32]string, len(names))}
	for code, name := range names {
		t.names[uint32(code)] = name
	}

	return t
}

// Lookup returns the name registered for code.
func (t CodeTable) Lookup(code uint32) (string, bool) {
	name, ok := t.names[code]

	return name, ok
}

// Name returns the name registered for code, or its FourCC rendering if the code is unknown.
func (t CodeTable) Name(code uint32) string {
	if name, ok := t.names[code]; ok {
		return name
	}

	return FourCC(code).String()
}

// Len returns the number of registered codes.
func (t CodeTable) Len() int {
	return len(t.names)
}

// Codes returns the registered codes in ascending order.
func (t CodeTable) Codes() []uint32 {
	codes := make([]uint32, 0, len(t.names))
	for code := range t.names {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

// Registry holds one CodeTable per code family.
type Registry struct {
	Manufacturers CodeTable
	UnitTypes     CodeTable
	UnitSubTypes  CodeTable
	Formats       CodeTable
}

var defaultRegistry = sync.OnceValue(newRegistry)

// DefaultRegistry returns the process-wide registry. It is built on first use.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func newRegistry() *Registry {
	return &Registry{
		Manufacturers: newCodeTable(manufacturerNames),
		UnitTypes:     newCodeTable(unitTypeNames),
		UnitSubTypes:  newCodeTable(unitSubTypeNames),
		Formats:       newCodeTable(formatNames),
	}
}

var manufacturerNames = map[FourCC]string{
	ManufacturerApple: "Apple",
}

var unitTypeNames = map[FourCC]string{
	UnitTypeOutput:            "Output",
	UnitTypeMusicDevice:       "MusicDevice",
	UnitTypeMusicEffect:       "MusicEffect",
	UnitTypeFormatConverter:   "FormatConverter",
	UnitTypeEffect:            "Effect",
	UnitTypeMixer:             "Mixer",
	UnitTypePanner:            "Panner",
	UnitTypeOfflineEffect:     "OfflineEffect",
	UnitTypeGenerator:         "Generator",
	UnitTypeMIDIProcessor:     "MIDIProcessor",
	UnitTypeRemoteEffect:      "RemoteEffect",
	UnitTypeRemoteGenerator:   "RemoteGenerator",
	UnitTypeRemoteInstrument:  "RemoteInstrument",
	UnitTypeRemoteMusicEffect: "RemoteMusicEffect",
}

// 'tmpt' is both kAudioUnitSubType_TimePitch and kAudioUnitSubType_Pitch; it is reported as Pitch.
var unitSubTypeNames = map[FourCC]string{
	UnitSubTypeGenericOutput:        "GenericOutput",
	UnitSubTypeHALOutput:            "HALOutput",
	UnitSubTypeDefaultOutput:        "DefaultOutput",
	UnitSubTypeSystemOutput:         "SystemOutput",
	UnitSubTypeRemoteIO:             "RemoteIO",
	UnitSubTypeVoiceProcessingIO:    "VoiceProcessingIO",
	UnitSubTypeDLSSynth:             "DLSSynth",
	UnitSubTypeSampler:              "Sampler",
	UnitSubTypeAUConverter:          "AUConverter",
	UnitSubTypeVarispeed:            "Varispeed",
	UnitSubTypeDeferredRenderer:     "DeferredRenderer",
	UnitSubTypeSplitter:             "Splitter",
	UnitSubTypeMerger:               "Merger",
	UnitSubTypeNewTimePitch:         "NewTimePitch",
	UnitSubTypeAUiPodTimeOther:      "AUiPodTimeOther",
	UnitSubTypeTimePitch:            "Pitch",
	UnitSubTypeRoundTripAAC:         "RoundTripAAC",
	UnitSubTypeAUiPodTime:           "AUiPodTime",
	UnitSubTypePeakLimiter:          "PeakLimiter",
	UnitSubTypeDynamicsProcessor:    "DynamicsProcessor",
	UnitSubTypeLowPassFilter:        "LowPassFilter",
	UnitSubTypeHighPassFilter:       "HighPassFilter",
	UnitSubTypeBandPassFilter:       "BandPassFilter",
	UnitSubTypeHighShelfFilter:      "HighShelfFilter",
	UnitSubTypeLowShelfFilter:       "LowShelfFilter",
	UnitSubTypeParametricEQ:         "ParametricEQ",
	UnitSubTypeDistortion:           "Distortion",
	UnitSubTypeDelay:                "Delay",
	UnitSubTypeGraphicEQ:            "GraphicEQ",
	UnitSubTypeMultiBandCompressor:  "MultiBandCompressor",
	UnitSubTypeMatrixReverb:         "MatrixReverb",
	UnitSubTypeAUFilter:             "AUFilter",
	UnitSubTypeNetSend:              "NetSend",
	UnitSubTypeSampleDelay:          "SampleDelay",
	UnitSubTypeRogerBeep:            "RogerBeep",
	UnitSubTypeReverb2:              "Reverb2",
	UnitSubTypeAUiPodEQ:             "AUiPodEQ",
	UnitSubTypeNBandEQ:              "NBandEQ",
	UnitSubTypeMultiChannelMixer:    "MultiChannelMixer",
	UnitSubTypeMatrixMixer:          "MatrixMixer",
	UnitSubTypeStereoMixer:          "StereoMixer",
	UnitSubType3DMixer:              "3DMixer",
	UnitSubTypeAU3DMixerEmbedded:    "AU3DMixerEmbedded",
	UnitSubTypeSphericalHeadPanner:  "SphericalHeadPanner",
	UnitSubTypeVectorPanner:         "VectorPanner",
	UnitSubTypeSoundFieldPanner:     "SoundFieldPanner",
	UnitSubTypeHRTFPanner:           "HRTFPanner",
	UnitSubTypeNetReceive:           "NetReceive",
	UnitSubTypeScheduledSoundPlayer: "ScheduledSoundPlayer",
	UnitSubTypeAudioFilePlayer:      "AudioFilePlayer",
}

var formatNames = map[FourCC]string{
	FormatLinearPCM:       "LinearPCM",
	FormatAC3:             "AC3",
	Format60958AC3:        "60958AC3",
	FormatAppleIMA4:       "AppleIMA4",
	FormatMPEG4AAC:        "MPEG4AAC",
	FormatMPEG4CELP:       "MPEG4CELP",
	FormatMPEG4HVXC:       "MPEG4HVXC",
	FormatMPEG4TwinVQ:     "MPEG4TwinVQ",
	FormatMACE3:           "MACE3",
	FormatMACE6:           "MACE6",
	FormatULaw:            "ULaw",
	FormatALaw:            "ALaw",
	FormatQDesign:         "QDesign",
	FormatQDesign2:        "QDesign2",
	FormatQUALCOMM:        "QUALCOMM",
	FormatMPEGLayer1:      "MPEGLayer1",
	FormatMPEGLayer2:      "MPEGLayer2",
	FormatMPEGLayer3:      "MPEGLayer3",
	FormatTimeCode:        "TimeCode",
	FormatMIDIStream:      "MIDIStream",
	FormatParameterValue:  "ParameterValueStream",
	FormatAppleLossless:   "AppleLossless",
	FormatMPEG4AACHE:      "MPEG4AAC_HE",
	FormatMPEG4AACLD:      "MPEG4AAC_LD",
	FormatMPEG4AACELD:     "MPEG4AAC_ELD",
	FormatMPEG4AACELDSBR:  "MPEG4AAC_ELD_SBR",
	FormatMPEG4AACELDV2:   "MPEG4AAC_ELD_V2",
	FormatMPEG4AACHEV2:    "MPEG4AAC_HE_V2",
	FormatMPEG4AACSpatial: "MPEG4AAC_Spatial",
	FormatAMR:             "AMR",
	FormatAudible:         "Audible",
	FormatILBC:            "iLBC",
	FormatDVIIntelIMA:     "DVIIntelIMA",
	FormatMicrosoftGSM:    "MicrosoftGSM",
	FormatAES3:            "AES3",
}
