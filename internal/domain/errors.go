package domain

// Stage identifies one of the four sequential pipeline stages.
type Stage string

const (
	StageCatalog           Stage = "catalog"
	StageInitialCompletion Stage = "initial-completion"
	StageToolExecution     Stage = "tool-execution"
	StageFinalCompletion   Stage = "final-completion"
)

// stagePrefixes are the caller-visible message prefixes for each stage.
var stagePrefixes = map[Stage]string{
	StageCatalog:           "Failed to get tools:",
	StageInitialCompletion: "OpenAI call failed:",
	StageToolExecution:     "Failed to run tools:",
	StageFinalCompletion:   "Final OpenAI call failed:",
}

// StageError tags an upstream failure with the pipeline stage it aborted.
// Only the rendered message crosses the HTTP boundary, never the
// underlying error value.
type StageError struct {
	Stage Stage
	Err   error
}

// NewStageError wraps err as a failure of the given stage.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return stagePrefixes[e.Stage] + " " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
