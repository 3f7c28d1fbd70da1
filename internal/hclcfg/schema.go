package hclcfg

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of a config file. Every block and
// attribute is optional; absent values keep their defaults.
type fileSchema struct {
	Common   *commonBlock   `hcl:"common,block"`
	Analysis *analysisBlock `hcl:"analysis,block"`
	Tools    *toolsBlock    `hcl:"tools,block"`
}

// commonBlock mirrors config.Common.
type commonBlock struct {
	Base       *string `hcl:"base,optional"`
	Binned     *bool   `hcl:"binned,optional"`
	EventClass *int    `hcl:"event_class,optional"`
	IRFs       *string `hcl:"irfs,optional"`
	Verbosity  *int    `hcl:"verbosity,optional"`
}

// analysisBlock mirrors config.Analysis. The time bounds are kept as raw
// expressions because the tools accept either a number or the literal
// INDEF.
type analysisBlock struct {
	RA         *float64       `hcl:"ra,optional"`
	Dec        *float64       `hcl:"dec,optional"`
	Radius     *float64       `hcl:"rad,optional"`
	TMin       hcl.Expression `hcl:"tmin,optional"`
	TMax       hcl.Expression `hcl:"tmax,optional"`
	EMin       *float64       `hcl:"emin,optional"`
	EMax       *float64       `hcl:"emax,optional"`
	ZMax       *float64       `hcl:"zmax,optional"`
	ConvType   *int           `hcl:"convtype,optional"`
	GTIFilter  *string        `hcl:"gti_filter,optional"`
	ROICut     *bool          `hcl:"roi_cut,optional"`
	BinSize    *float64       `hcl:"bin_size,optional"`
	EnergyBins *int           `hcl:"energy_bins,optional"`
}

// toolsBlock mirrors config.Tools.
type toolsBlock struct {
	BinDir         *string `hcl:"bin_dir,optional"`
	EnvFile        *string `hcl:"env_file,optional"`
	ModelGenerator *string `hcl:"model_generator,optional"`
}
