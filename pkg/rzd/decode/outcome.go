package decode

import "fmt"

// Outcome is the result of a successful decode. A decode that returns
// an error is fatal (the envelope itself was unrecognizable or the
// upstream reported an error); a nil Value means the upstream
// explicitly reported zero matches. Warnings describe records that
// were dropped or fields that failed to parse on a best-effort basis.
type Outcome[T any] struct {
	Value    *T
	Warnings []string
}

// Empty reports the recognized zero-matches outcome.
func (o Outcome[T]) Empty() bool {
	return o.Value == nil
}

func emptyOutcome[T any](warnings []string) Outcome[T] {
	return Outcome[T]{Warnings: warnings}
}

func foundOutcome[T any](value T, warnings []string) Outcome[T] {
	return Outcome[T]{Value: &value, Warnings: warnings}
}

func warnf(warnings []string, format string, args ...any) []string {
	return append(warnings, fmt.Sprintf(format, args...))
}
