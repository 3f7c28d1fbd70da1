// Package pipeline defines the data-preparation stages: which external tool
// each one drives, the parameters it populates, the files it needs before it
// can run, and the order stages take in a full run.
//
// Each stage is pure parameter plumbing. The scientific work (photon
// selection geometry, exposure integration, PSF convolution, map
// projection) happens entirely inside the external tool suite.
package pipeline
