package config

// DefaultGTIFilter is the standard good-time-interval cut applied by the
// gti stage unless the config overrides it.
const DefaultGTIFilter = "DATA_QUAL==1 && LAT_CONFIG==1 && ABS(ROCK_ANGLE)<52"

// Model is the unified, format-agnostic representation of a full run
// configuration.
type Model struct {
	Common   Common
	Analysis Analysis
	Tools    Tools
}

// Common holds the settings shared by every pipeline stage.
type Common struct {
	// Base is the analysis prefix; every input and product file name is
	// derived from it.
	Base string

	// Binned selects the binned-analysis branch of the full run (counts
	// cube, binned exposure, source maps) instead of the unbinned
	// exposure map.
	Binned bool

	// EventClass is the photon event class passed to the selection tool.
	EventClass int

	// IRFs names the instrument response functions used by the exposure
	// and source-map tools.
	IRFs string

	// Verbosity is accepted for compatibility with older config files.
	// The external tools keep their own chatter defaults.
	Verbosity int
}

// Analysis holds the region, time window, and energy selection.
type Analysis struct {
	RA     float64
	Dec    float64
	Radius float64

	// TMin and TMax bound the selection in mission elapsed time. "INDEF"
	// leaves the corresponding edge open, as the selection tool expects.
	TMin string
	TMax string

	EMin float64
	EMax float64

	// ZMax is the zenith-angle cut applied by the selection stage.
	ZMax float64

	// ConvType restricts the selection to front (0) or back (1)
	// conversions; -1 keeps both.
	ConvType int

	// GTIFilter is the spacecraft-quality cut for the gti stage.
	GTIFilter string

	// ROICut applies the region-of-interest zenith cut during GTI
	// filtering.
	ROICut bool

	// BinSize is the spatial bin width in degrees for the binned maps.
	BinSize float64

	// EnergyBins is the number of logarithmic energy bins in the counts
	// cube and binned exposure map.
	EnergyBins int
}

// Tools holds settings for locating and invoking the external tool suite.
type Tools struct {
	// BinDir, when set, is prepended to every tool name so a run can pin
	// a specific toolkit installation.
	BinDir string

	// EnvFile, when set, names a dotenv file whose variables are merged
	// into the environment of every tool subprocess.
	EnvFile string

	// ModelGenerator is the external command that writes the XML source
	// model from the catalog.
	ModelGenerator string
}

// Defaults returns a Model populated with the standard point-source
// analysis settings. Loaders start from this and overlay whatever the
// config file provides.
func Defaults(base string) *Model {
	return &Model{
		Common: Common{
			Base:       base,
			Binned:     false,
			EventClass: 2,
			IRFs:       "P7SOURCE_V6",
			Verbosity:  0,
		},
		Analysis: Analysis{
			RA:         0,
			Dec:        0,
			Radius:     10,
			TMin:       "INDEF",
			TMax:       "INDEF",
			EMin:       100,
			EMax:       300000,
			ZMax:       100,
			ConvType:   -1,
			GTIFilter:  DefaultGTIFilter,
			ROICut:     true,
			BinSize:    0.1,
			EnergyBins: 30,
		},
		Tools: Tools{
			ModelGenerator: "make2FGLxml",
		},
	}
}
