// Package health turns logged vital samples into risk assessments,
// per-metric trend series, linear predictions and plain-language insights.
//
// Every function in this package is pure: inputs are never modified and
// outputs depend only on the arguments, so results can be computed
// concurrently per request without coordination.
package health
