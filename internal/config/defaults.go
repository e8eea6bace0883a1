package config

const (
	// DefaultEmulator is the emulator build artifact, relative to the working directory
	DefaultEmulator = "./build/riscv-emulator"
	// DefaultCorpusDir is the directory holding the prebuilt test images
	DefaultCorpusDir = "external/bin-files"
	// DefaultConfigFile is the YAML file looked up in the working directory
	DefaultConfigFile = ".rvtest.yaml"
	// DefaultEnvFile is the dotenv file loaded before reading RVTEST_* variables
	DefaultEnvFile = ".env"
	// DefaultProfile is the harness generation used when none is selected
	DefaultProfile = ProfileCurrent
	// DefaultProgress picks the progress renderer from the terminal type
	DefaultProgress = ProgressAuto
	// DefaultLongNames rejects display names wider than the report column
	DefaultLongNames = LongNamesReject
)

// Emulator argument shapes
const (
	ShapeBare    = "bare"    // <exe> <image>
	ShapeTesting = "testing" // <exe> --testing <image>
	ShapeFlagged = "flagged" // <exe> --test [--jit] --image <image>
)

// Exit code conventions
const (
	ConventionPassOnOne  = "pass-on-one"
	ConventionPassOnZero = "pass-on-zero"
)

// Policies for display names wider than the pad width
const (
	LongNamesReject   = "reject"
	LongNamesUnpadded = "unpadded"
)

// Progress renderers
const (
	ProgressAuto = "auto"
	ProgressLine = "line"
	ProgressLog  = "log"
	ProgressBar  = "bar"
)

// Environment variables read after the dotenv file is loaded
const (
	EnvProfile  = "RVTEST_PROFILE"
	EnvEmulator = "RVTEST_EMULATOR"
	EnvCorpus   = "RVTEST_CORPUS"
)
