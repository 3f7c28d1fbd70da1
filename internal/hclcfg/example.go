package hclcfg

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/fermikit/latprep/internal/config"
)

// WriteExample writes a fully populated config file for the given basename
// so a new analysis starts from the standard defaults. It refuses to
// overwrite an existing file.
func WriteExample(path, base string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists, not overwriting", path)
	}

	m := config.Defaults(base)
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	common := root.AppendNewBlock("common", nil).Body()
	common.SetAttributeValue("base", cty.StringVal(m.Common.Base))
	common.SetAttributeValue("binned", cty.BoolVal(m.Common.Binned))
	common.SetAttributeValue("event_class", cty.NumberIntVal(int64(m.Common.EventClass)))
	common.SetAttributeValue("irfs", cty.StringVal(m.Common.IRFs))
	common.SetAttributeValue("verbosity", cty.NumberIntVal(int64(m.Common.Verbosity)))
	root.AppendNewline()

	analysis := root.AppendNewBlock("analysis", nil).Body()
	analysis.SetAttributeValue("ra", cty.NumberFloatVal(m.Analysis.RA))
	analysis.SetAttributeValue("dec", cty.NumberFloatVal(m.Analysis.Dec))
	analysis.SetAttributeValue("rad", cty.NumberFloatVal(m.Analysis.Radius))
	analysis.SetAttributeValue("tmin", cty.StringVal(m.Analysis.TMin))
	analysis.SetAttributeValue("tmax", cty.StringVal(m.Analysis.TMax))
	analysis.SetAttributeValue("emin", cty.NumberFloatVal(m.Analysis.EMin))
	analysis.SetAttributeValue("emax", cty.NumberFloatVal(m.Analysis.EMax))
	analysis.SetAttributeValue("zmax", cty.NumberFloatVal(m.Analysis.ZMax))
	analysis.SetAttributeValue("convtype", cty.NumberIntVal(int64(m.Analysis.ConvType)))
	analysis.SetAttributeValue("gti_filter", cty.StringVal(m.Analysis.GTIFilter))
	analysis.SetAttributeValue("roi_cut", cty.BoolVal(m.Analysis.ROICut))
	analysis.SetAttributeValue("bin_size", cty.NumberFloatVal(m.Analysis.BinSize))
	analysis.SetAttributeValue("energy_bins", cty.NumberIntVal(int64(m.Analysis.EnergyBins)))
	root.AppendNewline()

	tools := root.AppendNewBlock("tools", nil).Body()
	tools.SetAttributeValue("bin_dir", cty.StringVal(m.Tools.BinDir))
	tools.SetAttributeValue("env_file", cty.StringVal(m.Tools.EnvFile))
	tools.SetAttributeValue("model_generator", cty.StringVal(m.Tools.ModelGenerator))

	if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing example config: %w", err)
	}
	return nil
}
