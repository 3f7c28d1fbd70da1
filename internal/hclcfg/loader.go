package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/fermikit/latprep/internal/config"
	"github.com/fermikit/latprep/internal/ctxlog"
)

// Loader implements config.Loader for HCL config files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the config file at path, overlays it on the defaults for
// base, and validates the result.
func (l *Loader) Load(ctx context.Context, path, base string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, diags)
	}

	model := config.Defaults(base)
	l.applyCommon(ctx, model, fs.Common)
	if err := l.applyAnalysis(model, fs.Analysis); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	l.applyTools(model, fs.Tools)

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	logger.Debug("Configuration loaded.", "path", path, "base", model.Common.Base)
	return model, nil
}

func (l *Loader) applyCommon(ctx context.Context, m *config.Model, b *commonBlock) {
	if b == nil {
		return
	}
	if b.Base != nil && *b.Base != m.Common.Base {
		// The command-line basename always wins; the attribute exists so a
		// config file is self-describing.
		ctxlog.FromContext(ctx).Warn("Config base differs from command-line basename, using the latter.",
			"config_base", *b.Base, "basename", m.Common.Base)
	}
	if b.Binned != nil {
		m.Common.Binned = *b.Binned
	}
	if b.EventClass != nil {
		m.Common.EventClass = *b.EventClass
	}
	if b.IRFs != nil {
		m.Common.IRFs = *b.IRFs
	}
	if b.Verbosity != nil {
		m.Common.Verbosity = *b.Verbosity
	}
}

func (l *Loader) applyAnalysis(m *config.Model, b *analysisBlock) error {
	if b == nil {
		return nil
	}
	if b.RA != nil {
		m.Analysis.RA = *b.RA
	}
	if b.Dec != nil {
		m.Analysis.Dec = *b.Dec
	}
	if b.Radius != nil {
		m.Analysis.Radius = *b.Radius
	}
	if v, ok, err := timeBound("tmin", b.TMin); err != nil {
		return err
	} else if ok {
		m.Analysis.TMin = v
	}
	if v, ok, err := timeBound("tmax", b.TMax); err != nil {
		return err
	} else if ok {
		m.Analysis.TMax = v
	}
	if b.EMin != nil {
		m.Analysis.EMin = *b.EMin
	}
	if b.EMax != nil {
		m.Analysis.EMax = *b.EMax
	}
	if b.ZMax != nil {
		m.Analysis.ZMax = *b.ZMax
	}
	if b.ConvType != nil {
		m.Analysis.ConvType = *b.ConvType
	}
	if b.GTIFilter != nil {
		m.Analysis.GTIFilter = *b.GTIFilter
	}
	if b.ROICut != nil {
		m.Analysis.ROICut = *b.ROICut
	}
	if b.BinSize != nil {
		m.Analysis.BinSize = *b.BinSize
	}
	if b.EnergyBins != nil {
		m.Analysis.EnergyBins = *b.EnergyBins
	}
	return nil
}

func (l *Loader) applyTools(m *config.Model, b *toolsBlock) {
	if b == nil {
		return
	}
	if b.BinDir != nil {
		m.Tools.BinDir = *b.BinDir
	}
	if b.EnvFile != nil {
		m.Tools.EnvFile = *b.EnvFile
	}
	if b.ModelGenerator != nil {
		m.Tools.ModelGenerator = *b.ModelGenerator
	}
}

// timeBound evaluates a tmin/tmax expression, which may be a number, a
// string, or the bare INDEF keyword.
func timeBound(name string, expr hcl.Expression) (string, bool, error) {
	if expr == nil {
		return "", false, nil
	}

	val, diags := expr.Value(indefEvalContext())
	if diags.HasErrors() {
		return "", false, fmt.Errorf("invalid %s: %w", name, diags)
	}
	if val.IsNull() {
		return "", false, nil
	}

	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return s.AsString(), true, nil
}

// indefEvalContext allows INDEF to appear unquoted in time bounds, matching
// how the external tools spell an open edge.
func indefEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"INDEF": cty.StringVal("INDEF"),
		},
	}
}
