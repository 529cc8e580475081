// Package inspect provides optional logging decorators for railway steps
// and results. A decorator observes the outcome, reports it through an
// hclog.Logger, and passes the Result through untouched; the core packages
// stay silent.
package inspect
