package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/VanshitChoudhary/GAME-DEVELOPMENT-SNAKE-GAME/internal/snake"
)

type runStats struct {
	runIndex int
	seed     int64

	score    int
	length   int
	ticks    int
	cause    snake.Cause
	capped   bool
	minSpeed time.Duration

	firstEatTick     int
	firstSpeedUpTick int
	speedChanges     int
	rejectedInputs   int
}

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.IntVar(&maxTicks, "max-ticks", 5000, "tick cap per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "verbose", false, "print the full event log of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -max-ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("runs=%d max_ticks=%d seed_base=%d seed_step=%d\n\n", runs, maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ss := snake.NewSession(
			snake.WithSessionSeed(seed),
			snake.WithMaxTicks(maxTicks),
			snake.WithVerbose(verbose),
		)
		stats := collectRun(i+1, ss.Run(), ss.SimLog)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(ss.SimLog.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

func collectRun(runIndex int, sum snake.RoundSummary, sl *snake.SimLog) runStats {
	entries := sl.Entries()
	return runStats{
		runIndex:         runIndex,
		seed:             sum.Seed,
		score:            sum.Result.Score,
		length:           sum.Result.Length,
		ticks:            sum.Result.Ticks,
		cause:            sum.Result.Cause,
		capped:           sum.Capped,
		minSpeed:         sum.MinSpeed,
		firstEatTick:     firstTick(entries, "tick", "ate", ""),
		firstSpeedUpTick: firstTick(entries, "speed", "change", ""),
		speedChanges:     sl.CountCategory("speed", "change"),
		rejectedInputs:   sl.CountCategory("input", "rejected"),
	}
}

func firstTick(entries []snake.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	end := rs.cause.String()
	if rs.capped {
		end = "tick_cap"
	}
	fmt.Printf("result: score=%d length=%d ticks=%d end=%s\n", rs.score, rs.length, rs.ticks, end)
	fmt.Printf("phase_markers: first_eat=%d first_speed_up=%d\n", rs.firstEatTick, rs.firstSpeedUpTick)
	fmt.Printf("event_totals: speed_change=%d input_rejected=%d min_interval=%dms\n",
		rs.speedChanges, rs.rejectedInputs, rs.minSpeed.Milliseconds())
	if stalled, reason := detectStall(rs); stalled {
		fmt.Printf("stall: %s\n", reason)
	}
	fmt.Println()
}

// detectStall flags runs where the autopilot survived to the cap without
// ever eating often enough to speed up.
func detectStall(rs runStats) (bool, string) {
	if !rs.capped {
		return false, "round ended by collision"
	}
	var reasons []string
	reasons = append(reasons, "reached_tick_cap")
	if rs.firstEatTick < 0 {
		reasons = append(reasons, "never_ate")
	} else if rs.speedChanges == 0 {
		reasons = append(reasons, "no_speed_up")
	}
	if len(reasons) < 2 {
		return false, strings.Join(reasons, ",")
	}
	return true, strings.Join(reasons, ",")
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalLength := 0
	totalTicks := 0
	totalSpeedChanges := 0
	best := 0
	causes := map[string]int{}
	eatTicks := make([]int, 0, len(all))
	speedUpTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalScore += rs.score
		totalLength += rs.length
		totalTicks += rs.ticks
		totalSpeedChanges += rs.speedChanges
		if rs.score > best {
			best = rs.score
		}
		end := rs.cause.String()
		if rs.capped {
			end = "tick_cap"
		}
		causes[end]++
		if rs.firstEatTick >= 0 {
			eatTicks = append(eatTicks, rs.firstEatTick)
		}
		if rs.firstSpeedUpTick >= 0 {
			speedUpTicks = append(speedUpTicks, rs.firstSpeedUpTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d best_score=%d\n", len(all), best)
	fmt.Printf("avg_per_run: score=%.1f length=%.1f ticks=%.1f speed_change=%.1f\n",
		avg(totalScore, len(all)), avg(totalLength, len(all)), avg(totalTicks, len(all)), avg(totalSpeedChanges, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_eat=%s first_speed_up=%s\n",
		avgTickString(eatTicks), avgTickString(speedUpTicks))
	fmt.Printf("end_causes: %s\n", joinCounts(causes))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, len(labels))
	for i, k := range labels {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, ",")
}
