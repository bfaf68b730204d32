// Package automation runs scripted sort and search scenarios loaded from
// YAML and sweeps a dataset across every sort field.
package automation
