package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fermikit/latprep/internal/config"
	"github.com/fermikit/latprep/internal/ctxlog"
	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
	"github.com/fermikit/latprep/internal/workspace"
)

// testWorkspace keeps product paths relative so assertions stay readable.
func testWorkspace(base string) *workspace.Workspace {
	return workspace.New("", base)
}

// dryRunStage executes one stage definition against a dry-run runner and
// returns everything it logged, which includes the rendered command line.
func dryRunStage(t *testing.T, name string, model *config.Model) string {
	t.Helper()

	reg := stage.NewRegistry()
	(&Module{}).Register(reg)
	def, err := reg.Lookup(name)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	c := &stage.Context{
		Config:    model,
		Workspace: testWorkspace(model.Common.Base),
		Runner:    gtool.NewRunner("", ".", true),
	}
	require.NoError(t, def.Run(ctx, c))
	return buf.String()
}

func TestRegister_AllStagesPresent(t *testing.T) {
	t.Parallel()

	reg := stage.NewRegistry()
	(&Module{}).Register(reg)

	assert.Equal(t, []string{
		StageSelect, StageGTI, StageLTCube, StageExpMap, StageCCube,
		StageCMap, StageBExpMap, StageModel, StageSrcMaps, StageModelMap,
	}, reg.Names())
	require.NoError(t, reg.Validate(context.Background()))
}

func TestFullRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{StageSelect, StageGTI, StageLTCube, StageExpMap},
		FullRun(false))
	assert.Equal(t,
		[]string{StageSelect, StageGTI, StageLTCube, StageCCube, StageBExpMap, StageModel, StageSrcMaps},
		FullRun(true))
}

func TestSelectStage_Command(t *testing.T) {
	t.Parallel()

	model := config.Defaults("Crab")
	model.Analysis.RA = 83.633
	model.Analysis.Dec = 22.014

	logged := dryRunStage(t, StageSelect, model)

	assert.Contains(t, logged, "gtselect rad=10 evclass=2 infile=@Crab.list outfile=Crab_filtered.fits "+
		"ra=83.633 dec=22.014 tmin=INDEF tmax=INDEF emin=100 emax=300000 zmax=100 convtype=-1")
}

func TestGTIStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageGTI, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtmktime scfile=Crab_SC.fits")
	assert.Contains(t, logged, "DATA_QUAL==1")
	assert.Contains(t, logged, "roicut=yes evfile=Crab_filtered.fits outfile=Crab_filtered_gti.fits")
}

func TestLTCubeStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageLTCube, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtltcube evfile=Crab_filtered_gti.fits scfile=Crab_SC.fits "+
		"outfile=Crab_ltcube.fits dcostheta=0.025 binsz=1 zmax=180")
}

func TestExpMapStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageExpMap, config.Defaults("Crab"))

	// The map reaches 10 degrees beyond the selection radius.
	assert.Contains(t, logged, "srcrad=20")
	assert.Contains(t, logged, "nlong=120 nlat=120 nenergies=20")
	assert.Contains(t, logged, "irfs=P7SOURCE_V6")
}

func TestCCubeStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageCCube, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtbin evfile=Crab_filtered_gti.fits outfile=Crab_CCUBE.fits algorithm=CCUBE "+
		"nxpix=141 nypix=141 binsz=0.1 coordsys=CEL xref=0 yref=0 axisrot=0 proj=AIT "+
		"ebinalg=LOG emin=100 emax=300000 enumbins=30")
}

func TestCMapStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageCMap, config.Defaults("Crab"))

	assert.Contains(t, logged, "algorithm=CMAP")
	assert.Contains(t, logged, "outfile=Crab_CMAP.fits")
	// No energy axis on the quick-look map.
	assert.NotContains(t, logged, "enumbins")
}

func TestBExpMapStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageBExpMap, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtexpcube2 infile=Crab_ltcube.fits cmap=none outfile=Crab_BinnedExpMap.fits")
	assert.Contains(t, logged, "ebinalg=LOG emin=100 emax=300000 enumbins=30")
}

func TestSrcMapsStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageSrcMaps, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtsrcmaps scfile=Crab_SC.fits expcube=Crab_ltcube.fits cmap=Crab_CCUBE.fits "+
		"srcmdl=Crab_model.xml bexpmap=Crab_BinnedExpMap.fits outfile=Crab_srcMaps.fits "+
		"irfs=P7SOURCE_V6 rfactor=4 emapbnds=no")
}

func TestModelMapStage_Command(t *testing.T) {
	t.Parallel()

	logged := dryRunStage(t, StageModelMap, config.Defaults("Crab"))

	assert.Contains(t, logged, "gtmodel srcmaps=Crab_srcMaps.fits srcmdl=Crab_model.xml "+
		"outfile=Crab_modelMap.fits irfs=P7SOURCE_V6 expcube=Crab_ltcube.fits bexpmap=Crab_BinnedExpMap.fits")
}

func TestModelStage(t *testing.T) {
	t.Parallel()

	t.Run("invokes the configured generator", func(t *testing.T) {
		model := config.Defaults("Crab")
		logged := dryRunStage(t, StageModel, model)

		assert.Contains(t, logged, "make2FGLxml catalog=gll_psc_v07.fit evfile=Crab_filtered_gti.fits")
		assert.Contains(t, logged, "outfile=Crab_model.xml")
	})
}

func TestStageDependencies(t *testing.T) {
	t.Parallel()

	reg := stage.NewRegistry()
	(&Module{}).Register(reg)

	wantAfter := map[string][]string{
		StageSelect:   nil,
		StageGTI:      {StageSelect},
		StageLTCube:   {StageGTI},
		StageExpMap:   {StageLTCube},
		StageCCube:    {StageGTI},
		StageCMap:     {StageGTI},
		StageBExpMap:  {StageLTCube},
		StageModel:    {StageGTI},
		StageSrcMaps:  {StageCCube, StageBExpMap, StageModel},
		StageModelMap: {StageSrcMaps},
	}
	for name, want := range wantAfter {
		def, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, want, def.After, "stage %s", name)
	}
}
