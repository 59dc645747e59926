package finder

import "time"

type StageStats struct {
	Elapsed time.Duration
	Queries int
	// Exits counts the songs resolved with
	// a high-confidence match at this stage
	Exits int
}

type Stats map[Stage]StageStats

func (stats Stats) query(stage Stage) {
	stageStats := stats[stage]
	stageStats.Queries++
	stats[stage] = stageStats
}

func (stats Stats) elapse(stage Stage, elapsed time.Duration) {
	stageStats := stats[stage]
	stageStats.Elapsed += elapsed
	stats[stage] = stageStats
}

func (stats Stats) exit(stage Stage) {
	stageStats := stats[stage]
	stageStats.Exits++
	stats[stage] = stageStats
}

func (stats Stats) copy() Stats {
	clone := make(Stats, len(stats))
	for stage, stageStats := range stats {
		clone[stage] = stageStats
	}
	return clone
}
