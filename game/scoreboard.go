package game

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scoreboard holds the prepared text of the HUD.
// Each label is rebuilt only when its statistic changes.
type Scoreboard struct {
	Score     string
	HighScore string
	Level     string
	ShipsLeft int
}

// scorePrinter formats numbers with thousands separators
var scorePrinter = message.NewPrinter(language.English)

// prepScore renders the current score
func (sb *Scoreboard) prepScore(stats *Stats) {
	sb.Score = strconv.Itoa(stats.Score)
}

// prepHighScore renders the high score rounded to the nearest ten
func (sb *Scoreboard) prepHighScore(stats *Stats) {
	sb.HighScore = scorePrinter.Sprintf("%d", RoundToTens(stats.HighScore))
}

// prepLevel renders the current level
func (sb *Scoreboard) prepLevel(stats *Stats) {
	sb.Level = strconv.Itoa(stats.Level)
}

// prepShips records how many ship icons to draw
func (sb *Scoreboard) prepShips(stats *Stats) {
	sb.ShipsLeft = stats.ShipsLeft
}

// prepAll renders every label
func (sb *Scoreboard) prepAll(stats *Stats) {
	sb.prepScore(stats)
	sb.prepHighScore(stats)
	sb.prepLevel(stats)
	sb.prepShips(stats)
}

// RoundToTens rounds n to the nearest multiple of ten, ties to the even multiple
func RoundToTens(n int) int {
	return int(math.RoundToEven(float64(n)/10) * 10)
}
