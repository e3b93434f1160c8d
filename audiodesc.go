// Package audiodesc renders Core Audio stream and component descriptions as human-readable text.
package audiodesc

// Audio data format identifiers (kAudioFormat* in CoreAudioTypes.h).
const (
	FormatLinearPCM       FourCC = 0x6C70636D // 'lpcm'
	FormatAC3             FourCC = 0x61632D33 // 'ac-3'
	Format60958AC3        FourCC = 0x63616333 // 'cac3'
	FormatAppleIMA4       FourCC = 0x696D6134 // 'ima4'
	FormatMPEG4AAC        FourCC = 0x61616320 // 'aac '
	FormatMPEG4CELP       FourCC = 0x63656C70 // 'celp'
	FormatMPEG4HVXC       FourCC = 0x68767863 // 'hvxc'
	FormatMPEG4TwinVQ     FourCC = 0x74777671 // 'twvq'
	FormatMACE3           FourCC = 0x4D414333 // 'MAC3'
	FormatMACE6           FourCC = 0x4D414336 // 'MAC6'
	FormatULaw            FourCC = 0x756C6177 // 'ulaw'
	FormatALaw            FourCC = 0x616C6177 // 'alaw'
	FormatQDesign         FourCC = 0x51444D43 // 'QDMC'
	FormatQDesign2        FourCC = 0x51444D32 // 'QDM2'
	FormatQUALCOMM        FourCC = 0x51636C70 // 'Qclp'
	FormatMPEGLayer1      FourCC = 0x2E6D7031 // '.mp1'
	FormatMPEGLayer2      FourCC = 0x2E6D7032 // '.mp2'
	FormatMPEGLayer3      FourCC = 0x2E6D7033 // '.mp3'
	FormatTimeCode        FourCC = 0x74696D65 // 'time'
	FormatMIDIStream      FourCC = 0x6D696469 // 'midi'
	FormatParameterValue  FourCC = 0x61707673 // 'apvs'
	FormatAppleLossless   FourCC = 0x616C6163 // 'alac'
	FormatMPEG4AACHE      FourCC = 0x61616368 // 'aach'
	FormatMPEG4AACLD      FourCC = 0x6161636C // 'aacl'
	FormatMPEG4AACELD     FourCC = 0x61616365 // 'aace'
	FormatMPEG4AACELDSBR  FourCC = 0x61616366 // 'aacf'
	FormatMPEG4AACELDV2   FourCC = 0x61616367 // 'aacg'
	FormatMPEG4AACHEV2    FourCC = 0x61616370 // 'aacp'
	FormatMPEG4AACSpatial FourCC = 0x61616373 // 'aacs'
	FormatAMR             FourCC = 0x73616D72 // 'samr'
	FormatAudible         FourCC = 0x41554442 // 'AUDB'
	FormatILBC            FourCC = 0x696C6263 // 'ilbc'
	FormatDVIIntelIMA     FourCC = 0x6D730011
	FormatMicrosoftGSM    FourCC = 0x6D730031
	FormatAES3            FourCC = 0x61657333 // 'aes3'
)

// FormatFlag values qualify a FormatID. Their meaning depends on the format.
const (
	FormatFlagIsFloat          uint32 = 1 << 0
	FormatFlagIsBigEndian      uint32 = 1 << 1
	FormatFlagIsSignedInteger  uint32 = 1 << 2
	FormatFlagIsPacked         uint32 = 1 << 3
	FormatFlagIsAlignedHigh    uint32 = 1 << 4
	FormatFlagIsNonInterleaved uint32 = 1 << 5
	FormatFlagIsNonMixable     uint32 = 1 << 6
	FormatFlagsAreAllClear     uint32 = 1 << 31

	// The number of fractional bits of a fixed-point linear PCM sample
	// is stored in flags bits 7..12.
	LinearPCMSampleFractionShift        = 7
	LinearPCMSampleFractionMask  uint32 = 0x3F << LinearPCMSampleFractionShift

	// Flags for packed, interleaved integer and float linear PCM.
	FormatFlagsCanonicalInteger = FormatFlagIsSignedInteger | FormatFlagIsPacked
	FormatFlagsCanonicalFloat   = FormatFlagIsFloat | FormatFlagIsPacked
)

// Apple Lossless source bit depths. These are whole flag words, not bits.
const (
	AppleLossless16BitSourceData uint32 = 1
	AppleLossless20BitSourceData uint32 = 2
	AppleLossless24BitSourceData uint32 = 3
	AppleLossless32BitSourceData uint32 = 4
)

// Audio component manufacturers.
const (
	ManufacturerApple FourCC = 0x6170706C // 'appl'
)

// Audio unit types (kAudioUnitType_*).
const (
	UnitTypeOutput            FourCC = 0x61756F75 // 'auou'
	UnitTypeMusicDevice       FourCC = 0x61756D75 // 'aumu'
	UnitTypeMusicEffect       FourCC = 0x61756D66 // 'aumf'
	UnitTypeFormatConverter   FourCC = 0x61756663 // 'aufc'
	UnitTypeEffect            FourCC = 0x61756678 // 'aufx'
	UnitTypeMixer             FourCC = 0x61756D78 // 'aumx'
	UnitTypePanner            FourCC = 0x6175706E // 'aupn'
	UnitTypeOfflineEffect     FourCC = 0x61756F6C // 'auol'
	UnitTypeGenerator         FourCC = 0x6175676E // 'augn'
	UnitTypeMIDIProcessor     FourCC = 0x61756D69 // 'aumi'
	UnitTypeRemoteEffect      FourCC = 0x61757278 // 'aurx'
	UnitTypeRemoteGenerator   FourCC = 0x61757267 // 'aurg'
	UnitTypeRemoteInstrument  FourCC = 0x61757269 // 'auri'
	UnitTypeRemoteMusicEffect FourCC = 0x6175726D // 'aurm'
)

// Audio unit subtypes (kAudioUnitSubType_*).
const (
	UnitSubTypeGenericOutput        FourCC = 0x67656E72 // 'genr'
	UnitSubTypeHALOutput            FourCC = 0x6168616C // 'ahal'
	UnitSubTypeDefaultOutput        FourCC = 0x64656620 // 'def '
	UnitSubTypeSystemOutput         FourCC = 0x73797320 // 'sys '
	UnitSubTypeRemoteIO             FourCC = 0x72696F63 // 'rioc'
	UnitSubTypeVoiceProcessingIO    FourCC = 0x7670696F // 'vpio'
	UnitSubTypeDLSSynth             FourCC = 0x646C7320 // 'dls '
	UnitSubTypeSampler              FourCC = 0x73616D70 // 'samp'
	UnitSubTypeAUConverter          FourCC = 0x636F6E76 // 'conv'
	UnitSubTypeVarispeed            FourCC = 0x76617269 // 'vari'
	UnitSubTypeDeferredRenderer     FourCC = 0x64656672 // 'defr'
	UnitSubTypeSplitter             FourCC = 0x73706C74 // 'splt'
	UnitSubTypeMerger               FourCC = 0x6D657267 // 'merg'
	UnitSubTypeNewTimePitch         FourCC = 0x6E757470 // 'nutp'
	UnitSubTypeAUiPodTimeOther      FourCC = 0x6970746F // 'ipto'
	UnitSubTypeTimePitch            FourCC = 0x746D7074 // 'tmpt'
	UnitSubTypeRoundTripAAC         FourCC = 0x72616163 // 'raac'
	UnitSubTypeAUiPodTime           FourCC = 0x6970746D // 'iptm'
	UnitSubTypePeakLimiter          FourCC = 0x6C6D7472 // 'lmtr'
	UnitSubTypeDynamicsProcessor    FourCC = 0x64636D70 // 'dcmp'
	UnitSubTypeLowPassFilter        FourCC = 0x6C706173 // 'lpas'
	UnitSubTypeHighPassFilter       FourCC = 0x68706173 // 'hpas'
	UnitSubTypeBandPassFilter       FourCC = 0x62706173 // 'bpas'
	UnitSubTypeHighShelfFilter      FourCC = 0x68736866 // 'hshf'
	UnitSubTypeLowShelfFilter       FourCC = 0x6C736866 // 'lshf'
	UnitSubTypeParametricEQ         FourCC = 0x706D6571 // 'pmeq'
	UnitSubTypeDistortion           FourCC = 0x64697374 // 'dist'
	UnitSubTypeDelay                FourCC = 0x64656C79 // 'dely'
	UnitSubTypeGraphicEQ            FourCC = 0x67726571 // 'greq'
	UnitSubTypeMultiBandCompressor  FourCC = 0x6D636D70 // 'mcmp'
	UnitSubTypeMatrixReverb         FourCC = 0x6D726576 // 'mrev'
	UnitSubTypeAUFilter             FourCC = 0x66696C74 // 'filt'
	UnitSubTypeNetSend              FourCC = 0x6E736E64 // 'nsnd'
	UnitSubTypeSampleDelay          FourCC = 0x73646C79 // 'sdly'
	UnitSubTypeRogerBeep            FourCC = 0x726F6772 // 'rogr'
	UnitSubTypeReverb2              FourCC = 0x72766232 // 'rvb2'
	UnitSubTypeAUiPodEQ             FourCC = 0x69706571 // 'ipeq'
	UnitSubTypeNBandEQ              FourCC = 0x6E626571 // 'nbeq'
	UnitSubTypeMultiChannelMixer    FourCC = 0x6D636D78 // 'mcmx'
	UnitSubTypeMatrixMixer          FourCC = 0x6D786D78 // 'mxmx'
	UnitSubTypeStereoMixer          FourCC = 0x736D7872 // 'smxr'
	UnitSubType3DMixer              FourCC = 0x33646D78 // '3dmx'
	UnitSubTypeAU3DMixerEmbedded    FourCC = 0x3364656D // '3dem'
	UnitSubTypeSphericalHeadPanner  FourCC = 0x73706872 // 'sphr'
	UnitSubTypeVectorPanner         FourCC = 0x76626173 // 'vbas'
	UnitSubTypeSoundFieldPanner     FourCC = 0x616D6269 // 'ambi'
	UnitSubTypeHRTFPanner           FourCC = 0x68727466 // 'hrtf'
	UnitSubTypeNetReceive           FourCC = 0x6E726376 // 'nrcv'
	UnitSubTypeScheduledSoundPlayer FourCC = 0x7373706C // 'sspl'
	UnitSubTypeAudioFilePlayer      FourCC = 0x6166706C // 'afpl'
)
