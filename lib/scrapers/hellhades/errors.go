package hellhades

import (
	"errors"
	"fmt"
)

var (
	ErrPageUnavailable  = errors.New("champion page unavailable")
	ErrNameNotFound     = errors.New("champion name not found")
	ErrAttributeMissing = errors.New("champion faction or affinity missing")
	ErrSectionNotFound  = errors.New("rating section not found")
)

// Stage is a state of the record assembly, stages are reached in order.
type Stage int

const (
	StageStart Stage = iota
	StageNameResolved
	StageAttributesResolved
	StageOverallResolved
	StageCoreResolved
	StageDungeonsResolved
	StageHardModeResolved
	StageDoomTowerResolved
	StageFactionWarsResolved
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageNameResolved:
		return "name resolved"
	case StageAttributesResolved:
		return "attributes resolved"
	case StageOverallResolved:
		return "overall resolved"
	case StageCoreResolved:
		return "core resolved"
	case StageDungeonsResolved:
		return "dungeons resolved"
	case StageHardModeResolved:
		return "hard mode resolved"
	case StageDoomTowerResolved:
		return "doom tower resolved"
	case StageFactionWarsResolved:
		return "faction wars resolved"
	case StageComplete:
		return "complete"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ExtractError is returned when a document cannot be turned into a
// complete champion. Stage is the last stage that was reached and Section
// names the rating section that was missing, if any.
type ExtractError struct {
	Stage   Stage
	Section string
	Reason  string
	Err     error
}

func (e *ExtractError) Error() string {
	msg := e.Err.Error()
	if e.Section != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Section)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return fmt.Sprintf("%s after %s", msg, e.Stage)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// MissingSection reports which section was absent when err is a section
// failure.
func MissingSection(err error) (string, bool) {
	var extractErr *ExtractError
	if errors.As(err, &extractErr) && errors.Is(extractErr.Err, ErrSectionNotFound) {
		return extractErr.Section, true
	}
	return "", false
}
