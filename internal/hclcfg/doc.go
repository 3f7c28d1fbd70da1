// Package hclcfg is the HCL implementation of config.Loader. It parses the
// per-analysis configuration file, overlays it on the standard defaults,
// and can write a commented example config for new analyses.
package hclcfg
