// Package script turns an analyzed brief into an ordered scene sequence with
// narration text and per-scene timing.
//
// Scene count is a clamped linear function of the target duration, role
// assignment follows a fixed hook/body/climax/cta pattern, and narration is
// filled from an embedded template table keyed by role, tone class, and
// audience class. Per-scene seconds are rounded and the remainder lands on
// the final scene so the total always reproduces the requested duration.
package script
