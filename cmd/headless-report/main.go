package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/Garsondee/Wire-Strike/internal/game"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// scenarios maps a scenario name to the bot that plays it.
var scenarios = map[string]game.Script{
	"turret": game.TurretBot,
	"strafe": game.StrafeBot,
	"kite":   game.KiteBot,
}

type runStats struct {
	runIndex int
	seed     int64
	session  string
	ticks    int

	firstHitTick  int
	firstHurtTick int
	deathTick     int
	waveReached   int
	healthLeft    float64
	maxHealth     float64

	stats    game.SessionStats
	score    float64
	grade    string
	pressure string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "max ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "turret", "scenario name ("+scenarioNames()+")")
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if runs <= 0 {
		log.Fatal().Int("runs", runs).Msg("-runs must be > 0")
	}
	if ticks <= 0 {
		log.Fatal().Int("ticks", ticks).Msg("-ticks must be > 0")
	}
	script, err := scriptFor(scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("bad scenario")
	}
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("load config")
	}

	fmt.Printf("=== Headless Wire Strike Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all, err := runAll(cfg, script, runs, ticks, seedBase, seedStep)
	if err != nil {
		log.Fatal().Err(err).Msg("headless runs failed")
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func scriptFor(name string) (game.Script, error) {
	s, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unsupported scenario %q (supported: %s)", name, scenarioNames())
	}
	return s, nil
}

// runAll plays every run in parallel. Results keep run order.
func runAll(cfg game.Config, script game.Script, runs, ticks int, seedBase, seedStep int64) ([]runStats, error) {
	out := make([]runStats, runs)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			seed := seedBase + int64(i)*seedStep
			rs, err := runScenario(i+1, seed, cfg, script, ticks)
			if err != nil {
				return fmt.Errorf("run %d (seed=%d): %w", i+1, seed, err)
			}
			out[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runScenario(runIndex int, seed int64, cfg game.Config, script game.Script, ticks int) (runStats, error) {
	if err := cfg.Validate(); err != nil {
		return runStats{}, err
	}
	ts := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithSeed(seed),
		game.WithWaves(),
	)
	ts.RunUntil(func(s *game.Sim) bool { return s.Over }, script, ticks)

	deathTick := -1
	if ts.Over {
		deathTick = ts.SimLog.FirstTick("player", "death")
	}
	score := ts.Stats.Score(cfg.MaxHealth)
	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		session:       ts.SessionID,
		ticks:         ts.Tick,
		firstHitTick:  ts.SimLog.FirstTick("shot", "hit"),
		firstHurtTick: ts.SimLog.FirstTick("player", "hurt"),
		deathTick:     deathTick,
		waveReached:   ts.Wave,
		healthLeft:    ts.Health,
		maxHealth:     cfg.MaxHealth,
		stats:         ts.Stats,
		score:         score,
		grade:         game.LetterGrade(score),
		pressure:      ts.Reporter.WindowSummary().Format(),
	}, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, rs.session)
	fmt.Printf("phase_markers: first_hit=%d first_hurt=%d death=%d ticks=%d\n",
		rs.firstHitTick, rs.firstHurtTick, rs.deathTick, rs.ticks)
	fmt.Printf("outcome: wave=%d health=%.0f grade=%s score=%.1f\n", rs.waveReached, rs.healthLeft, rs.grade, rs.score)
	fmt.Print(rs.stats.Format(rs.maxHealth))
	fmt.Print(rs.pressure)
	fmt.Println()
}

type aggregate struct {
	runs       int
	deaths     int
	shots      int
	hits       int
	waves      int
	scoreSum   float64
	bestWave   int
	hitTicks   []int
	hurtTicks  []int
	deathTicks []int
	grades     map[string]int
}

func summarize(all []runStats) aggregate {
	a := aggregate{runs: len(all), grades: map[string]int{}}
	for _, rs := range all {
		a.shots += rs.stats.Shots
		a.hits += rs.stats.Hits
		a.waves += rs.stats.WavesCleared
		a.scoreSum += rs.score
		a.grades[rs.grade]++
		if rs.waveReached > a.bestWave {
			a.bestWave = rs.waveReached
		}
		if rs.firstHitTick >= 0 {
			a.hitTicks = append(a.hitTicks, rs.firstHitTick)
		}
		if rs.firstHurtTick >= 0 {
			a.hurtTicks = append(a.hurtTicks, rs.firstHurtTick)
		}
		if rs.deathTick >= 0 {
			a.deaths++
			a.deathTicks = append(a.deathTicks, rs.deathTick)
		}
	}
	return a
}

func printAggregate(all []runStats) {
	a := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d deaths=%d best_wave=%d avg_waves_cleared=%.2f\n",
		a.runs, a.deaths, a.bestWave, avg(a.waves, a.runs))
	acc := 0.0
	if a.shots > 0 {
		acc = float64(a.hits) / float64(a.shots)
	}
	fmt.Printf("shots=%d hits=%d accuracy=%.1f%% avg_score=%.1f\n", a.shots, a.hits, acc*100, a.scoreSum/float64(max(a.runs, 1)))
	fmt.Printf("avg_ticks: first_hit=%s first_hurt=%s death=%s\n",
		avgTickString(a.hitTicks), avgTickString(a.hurtTicks), avgTickString(a.deathTicks))
	fmt.Printf("grades: %s\n", formatGrades(a.grades))
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

func formatGrades(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
