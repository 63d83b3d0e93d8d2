package tetris

import (
	"fmt"
	"time"
)

// DefaultFallBase is the fall interval at level 1.
const DefaultFallBase = 1000 * time.Millisecond

// linesPerLevel is how many cleared rows it takes to gain a level.
const linesPerLevel = 5

// linePoints is the base award for clearing 1, 2, 3 or 4 rows at once.
var linePoints = [...]int{40, 100, 300, 1200}

// PointsFor returns the score for clearing n rows at the given level.
// A single lock spans at most four rows; more than that means the grid
// logic is broken, so it panics rather than guessing.
func PointsFor(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n > len(linePoints) {
		panic(fmt.Sprintf("tetris: %d rows cleared by a single lock", n))
	}
	return linePoints[n-1] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return 1 + lines/linesPerLevel
}

// FallIntervalFor returns base/level, truncated to whole milliseconds.
func FallIntervalFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return time.Duration(base.Milliseconds()/int64(level)) * time.Millisecond
}
