// Package workspace maps an analysis basename onto the fixed file namespace
// the pipeline reads and writes. Every product path is derived from the
// basename by suffix, so stages can name their inputs without coordinating
// with each other.
package workspace

import "path/filepath"

// Workspace resolves product file paths for one analysis.
type Workspace struct {
	// Dir is the working directory holding all inputs and products.
	Dir string

	// Base is the analysis prefix.
	Base string
}

// New returns a Workspace rooted at dir for the given basename.
func New(dir, base string) *Workspace {
	if dir == "" {
		dir = "."
	}
	return &Workspace{Dir: dir, Base: base}
}

func (w *Workspace) path(suffix string) string {
	return filepath.Join(w.Dir, w.Base+suffix)
}

// EventList is the user-supplied text file listing raw event files, one
// per line.
func (w *Workspace) EventList() string { return w.path(".list") }

// Spacecraft is the user-supplied spacecraft pointing/livetime history file.
func (w *Workspace) Spacecraft() string { return w.path("_SC.fits") }

// Filtered is the event file after region/energy/time selection.
func (w *Workspace) Filtered() string { return w.path("_filtered.fits") }

// FilteredGTI is the selected event file after good-time-interval filtering.
func (w *Workspace) FilteredGTI() string { return w.path("_filtered_gti.fits") }

// LivetimeCube is the livetime cube product.
func (w *Workspace) LivetimeCube() string { return w.path("_ltcube.fits") }

// ExposureMap is the unbinned-analysis exposure map.
func (w *Workspace) ExposureMap() string { return w.path("_expMap.fits") }

// CountsCube is the binned-analysis counts cube.
func (w *Workspace) CountsCube() string { return w.path("_CCUBE.fits") }

// CountsMap is the quick-look counts map.
func (w *Workspace) CountsMap() string { return w.path("_CMAP.fits") }

// BinnedExposureMap is the binned-analysis exposure map.
func (w *Workspace) BinnedExposureMap() string { return w.path("_BinnedExpMap.fits") }

// SourceMaps is the convolved source-map product.
func (w *Workspace) SourceMaps() string { return w.path("_srcMaps.fits") }

// ModelXML is the XML source model for the region.
func (w *Workspace) ModelXML() string { return w.path("_model.xml") }

// ModelMap is the model counts map produced from the source maps.
func (w *Workspace) ModelMap() string { return w.path("_modelMap.fits") }

// LogFile is the per-run log file written alongside the products.
func (w *Workspace) LogFile() string { return w.path("_latprep.log") }

// GalacticDiffuse is the galactic diffuse emission model the model stage
// expects in the working directory.
func (w *Workspace) GalacticDiffuse() string { return filepath.Join(w.Dir, "gal_2yearp7v6_v0.fits") }

// IsotropicDiffuse is the isotropic diffuse spectrum template.
func (w *Workspace) IsotropicDiffuse() string { return filepath.Join(w.Dir, "iso_p7v6source.txt") }

// SourceCatalog is the point-source catalog the model generator reads.
func (w *Workspace) SourceCatalog() string { return filepath.Join(w.Dir, "gll_psc_v07.fit") }
