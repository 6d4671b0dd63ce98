package game

import (
	"fmt"
	"strings"
)

// RoundStats summarizes a match's event log: shot counts, outcome mix,
// and how the most recent round ended. Consumed by cmd/duel-report and
// the in-game report copy.
type RoundStats struct {
	Round       int
	Shots       int
	TerrainHits int
	DirectHits  int
	OutOfBounds int
	Craters     int
	Winner      string // "P1", "P2", or "--" while the round is live
	WinKind     string // "direct", "splash", or "--"
}

// CollectRoundStats derives RoundStats from the match log.
func CollectRoundStats(m *Match) RoundStats {
	log := m.Log()
	rs := RoundStats{
		Round:       m.Round(),
		Shots:       log.CountCategory("shot", "fired"),
		TerrainHits: log.CountCategory("impact", "terrain"),
		DirectHits:  log.CountCategory("impact", "direct"),
		OutOfBounds: log.CountCategory("impact", "out_of_bounds"),
		Craters:     log.CountCategory("crater", "carved"),
		Winner:      "--",
		WinKind:     "--",
	}
	if over, ok := log.LastOf("round", "over"); ok {
		rs.Winner = over.Player
		switch {
		case strings.Contains(over.Value, "splash"):
			rs.WinKind = "splash"
		case strings.Contains(over.Value, "direct"):
			rs.WinKind = "direct"
		}
	}
	return rs
}

// Format renders the stats as a fixed-key report block.
func (rs RoundStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "round=%d shots=%d\n", rs.Round, rs.Shots)
	fmt.Fprintf(&sb, "impacts: terrain=%d direct=%d out_of_bounds=%d craters=%d\n",
		rs.TerrainHits, rs.DirectHits, rs.OutOfBounds, rs.Craters)
	fmt.Fprintf(&sb, "winner=%s win_kind=%s\n", rs.Winner, rs.WinKind)
	return sb.String()
}
