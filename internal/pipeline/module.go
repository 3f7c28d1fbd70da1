package pipeline

import (
	"github.com/fermikit/latprep/internal/stage"
)

// Stage names, in the order usage output lists them.
const (
	StageSelect   = "select"
	StageGTI      = "gti"
	StageLTCube   = "ltcube"
	StageExpMap   = "expmap"
	StageCCube    = "ccube"
	StageCMap     = "cmap"
	StageBExpMap  = "bexpmap"
	StageModel    = "model"
	StageSrcMaps  = "srcmaps"
	StageModelMap = "modelmap"
)

// Module implements stage.Module for the whole data-preparation pipeline.
type Module struct{}

// Register registers every stage definition with the registry.
func (m *Module) Register(r *stage.Registry) {
	r.Register(selectDef())
	r.Register(gtiDef())
	r.Register(ltcubeDef())
	r.Register(expmapDef())
	r.Register(ccubeDef())
	r.Register(cmapDef())
	r.Register(bexpmapDef())
	r.Register(modelDef())
	r.Register(srcmapsDef())
	r.Register(modelmapDef())
}

// FullRun returns the stage set of a complete preparation run. The binned
// branch ends in source maps; the unbinned branch ends in the unbinned
// exposure map.
func FullRun(binned bool) []string {
	common := []string{StageSelect, StageGTI, StageLTCube}
	if binned {
		return append(common, StageCCube, StageBExpMap, StageModel, StageSrcMaps)
	}
	return append(common, StageExpMap)
}
