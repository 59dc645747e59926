package finder

// Stage is one step of the search:
// stages run in order until one yields a high-confidence match
type Stage int

const (
	StageExact Stage = iota
	StageLoose
	StageFallback
	StageDone
	// StageTagged marks outcomes resolved from the
	// identifier already stored in the file tags
	StageTagged
)

// Stages lists the searching stages in execution order
var Stages = []Stage{StageExact, StageLoose, StageFallback}

func (stage Stage) String() string {
	switch stage {
	case StageExact:
		return "exact"
	case StageLoose:
		return "loose"
	case StageFallback:
		return "fallback"
	case StageDone:
		return "done"
	case StageTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// next returns the stage to move to once the given one is over,
// given the best score collected so far
func next(stage Stage, best float64, config Config) Stage {
	if best >= config.HighConfidence {
		return StageDone
	}
	switch stage {
	case StageExact:
		return StageLoose
	case StageLoose:
		return StageFallback
	default:
		return StageDone
	}
}
