package pipeline

// StageState names one pipeline stage's current latch contents, for
// display-only introspection by the Display and Single_Step run modes.
// It carries no behavior of its own; it exists purely so a caller outside
// this package can render what each stage currently holds without the
// engine exposing its latch fields directly.
type StageState struct {
	Name  string
	Latch Latch
}
