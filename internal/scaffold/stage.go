package scaffold

import "fmt"

// Stage is a pipeline state. Stages advance in declaration order; any
// failure moves to StageFailed.
type Stage int

const (
	StageStart Stage = iota
	StageValidated
	StageDirectoryReady
	StageTemplatesCopied
	StageConfigsRewritten
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageValidated:
		return "validated"
	case StageDirectoryReady:
		return "directory-ready"
	case StageTemplatesCopied:
		return "templates-copied"
	case StageConfigsRewritten:
		return "configs-rewritten"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError reports the stage a run could not reach. It unwraps to the
// cause so sentinel checks keep working.
type StageError struct {
	// Stage is the stage that was being entered.
	Stage Stage

	// Err is the underlying failure.
	Err error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
