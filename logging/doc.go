// Package logging builds the zap loggers used as the diagnostic sink of
// cronies pipelines.
//
// Library packages never log globally; they receive a *zap.Logger through
// chain.WithLogger. The CLI builds one from its configuration with [New],
// and tests use [NewObserved] to assert on what was logged.
package logging
