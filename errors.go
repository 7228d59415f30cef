package spell

import "fmt"

// ConfigurationError reports an invalid constructor argument.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "spell: configuration error: " + e.Message
}

// DistanceBudgetExceeded is returned by Lookup when the caller asks for a
// max edit distance larger than the Index was built to support.
type DistanceBudgetExceeded struct {
	Requested, Max int
}

func (e *DistanceBudgetExceeded) Error() string {
	return fmt.Sprintf("spell: requested max edit distance %d exceeds index max %d", e.Requested, e.Max)
}

// InputShapeError is raised by the casing-transfer helpers when asked to
// transfer casing between strings of mismatched rune length.
type InputShapeError struct {
	LenWithCasing, LenWithoutCasing int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("spell: casing transfer requires equal-length strings, got %d and %d",
		e.LenWithCasing, e.LenWithoutCasing)
}

// SnapshotVersionMismatch is returned by Load when a persisted snapshot's
// data_version does not match the version this build of the package writes.
type SnapshotVersionMismatch struct {
	Got, Want int
}

func (e *SnapshotVersionMismatch) Error() string {
	return fmt.Sprintf("spell: snapshot data_version %d does not match expected %d", e.Got, e.Want)
}
