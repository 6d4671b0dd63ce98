package main

import (
	"flag"
	"fmt"

	"cannonade/internal/game"
)

// runResult is one headless duel's statistics plus where it ended.
type runResult struct {
	runIndex int
	seed     int64
	stats    game.RoundStats
	finished bool
	shots    int
}

func main() {
	var runs int
	var maxShots int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 10, "number of headless duels")
	flag.IntVar(&maxShots, "max-shots", 200, "shot cap per duel before calling it a draw")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxShots <= 0 {
		fmt.Println("error: -max-shots must be > 0")
		return
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("runs=%d max_shots=%d seed_base=%d seed_step=%d\n\n", runs, maxShots, seedBase, seedStep)

	all := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rr := runDuel(i+1, seed, maxShots)
		all = append(all, rr)
		printRun(rr)
	}

	printAggregate(all)
}

// runDuel plays one duel with uniform random valid shots until a kill or
// the shot cap.
func runDuel(runIndex int, seed int64, maxShots int) runResult {
	ds := game.NewDuelSim(game.WithSeed(seed))
	shots := 0
	for ds.Match.Phase() != game.PhaseRoundOver && shots < maxShots {
		if _, err := ds.RandomShot(); err != nil {
			// Random parameters are drawn inside the valid ranges; a
			// rejection here is a bug worth surfacing, not skipping.
			fmt.Printf("run %d: unexpected input rejection: %v\n", runIndex, err)
			break
		}
		shots++
	}
	return runResult{
		runIndex: runIndex,
		seed:     seed,
		stats:    game.CollectRoundStats(ds.Match),
		finished: ds.Match.Phase() == game.PhaseRoundOver,
		shots:    shots,
	}
}

func printRun(rr runResult) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rr.runIndex, rr.seed)
	fmt.Print(rr.stats.Format())
	if !rr.finished {
		fmt.Printf("unfinished after %d shots\n", rr.shots)
	}
	fmt.Println()
}

func printAggregate(all []runResult) {
	totalShots := 0
	totalTerrain := 0
	totalDirect := 0
	totalOOB := 0
	finished := 0
	winsBySide := map[string]int{}
	winsByKind := map[string]int{}

	for _, rr := range all {
		totalShots += rr.stats.Shots
		totalTerrain += rr.stats.TerrainHits
		totalDirect += rr.stats.DirectHits
		totalOOB += rr.stats.OutOfBounds
		if rr.finished {
			finished++
			winsBySide[rr.stats.Winner]++
			winsByKind[rr.stats.WinKind]++
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d finished=%d\n", n, finished)
	fmt.Printf("avg_per_run: shots=%.1f terrain_hits=%.1f direct_hits=%.1f out_of_bounds=%.1f\n",
		avg(totalShots, n), avg(totalTerrain, n), avg(totalDirect, n), avg(totalOOB, n))
	fmt.Printf("wins_by_side: P1=%d P2=%d\n", winsBySide["P1"], winsBySide["P2"])
	fmt.Printf("wins_by_kind: direct=%d splash=%d\n", winsByKind["direct"], winsByKind["splash"])
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
