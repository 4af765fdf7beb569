// Command plan is the one-shot CLI: it loads a conference dataset, scores
// it against a preset or a profile file, and prints the personalized
// schedule with conflict warnings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/okian/confplan/internal/dataset"
	"github.com/okian/confplan/internal/domain/conflict"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/rank"
	"github.com/okian/confplan/internal/domain/scoring"
	"github.com/okian/confplan/internal/profile"
	"github.com/okian/confplan/internal/report"
	"github.com/okian/confplan/pkg/logger"
)

func main() {
	var (
		dataPath    = flag.String("data", "data/sessions.csv", "dataset path (CSV or JSON)")
		presetName  = flag.String("preset", "battery", "preset profile name")
		profilePath = flag.String("profile", "", "custom profile JSON file (overrides -preset)")
		minScore    = flag.Float64("min-score", 5, "inclusive relevance threshold for the schedule")
		threshold   = flag.Float64("conflict-threshold", rank.DefaultHighPriorityThreshold, "score cutoff for conflict checking")
		csvPath     = flag.String("csv", "", "also write the schedule to this CSV file")
		showReport  = flag.Bool("report", false, "print the per-symposium summary")
		listPresets = flag.Bool("list-presets", false, "list preset profile names and exit")
	)
	flag.Parse()

	if *listPresets {
		fmt.Println(strings.Join(profile.PresetNames(), "\n"))
		return
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	ctx := context.Background()

	prof, err := resolveProfile(*presetName, *profilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "profile:", err)
		os.Exit(1)
	}

	sessions, err := dataset.Load(ctx, *dataPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dataset:", err)
		os.Exit(1)
	}

	scored := scoring.New().ScoreAll(sessions, prof)
	ranked := rank.FilterSort(scored, *minScore)

	if err := report.WriteSchedule(os.Stdout, ranked, prof); err != nil {
		fmt.Fprintln(os.Stderr, "schedule:", err)
		os.Exit(1)
	}

	high := rank.FilterSort(scored, *threshold)
	var conflicts []model.Conflict
	for _, day := range rank.GroupByDay(high) {
		conflicts = append(conflicts, conflict.Find(day)...)
	}
	if err := report.WriteConflicts(os.Stdout, conflicts); err != nil {
		fmt.Fprintln(os.Stderr, "conflicts:", err)
		os.Exit(1)
	}

	if *showReport {
		printSymposiums(ranked)
	}

	if *csvPath != "" {
		if err := exportCSV(*csvPath, ranked); err != nil {
			fmt.Fprintln(os.Stderr, "csv:", err)
			os.Exit(1)
		}
		fmt.Printf("\nSchedule exported to %s\n", *csvPath)
	}
}

// resolveProfile loads a profile file when given, otherwise a preset.
func resolveProfile(preset, path string) (profile.Profile, error) {
	if path != "" {
		return profile.Load(path)
	}
	return profile.Preset(preset)
}

func printSymposiums(ranked []model.ScoredSession) {
	summaries := report.Symposiums(ranked)
	fmt.Println("\nSymposium summary")
	fmt.Println(strings.Repeat("=", 60))
	for _, s := range summaries {
		fmt.Printf("%s: %d sessions, avg score %.1f, max %.1f\n",
			s.Symposium, s.TotalSessions, s.AvgScore, s.MaxScore)
	}
}

func exportCSV(path string, ranked []model.ScoredSession) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f, ranked)
}
