// Package provisioning provides the phase pipeline that composes a plan.
//
// A [Context] carries the composition input, the dependency graph under
// construction, the observer, the metrics and an optional
// [ResourceLocator]. Phases run strictly in order through [RunPhases]; the
// first failing phase aborts the pass and its error is returned wrapped
// with the phase name.
//
// This package also owns the shared observability types ([Observer],
// [Event]) and the validation phase that every pass starts with.
package provisioning
