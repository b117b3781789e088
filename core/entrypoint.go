package core

import (
	"log/slog"
	"os"

	"github.com/encodeous/tint"
	"github.com/routesim/gaorex/state"
)

// ribOutputPath is the fixed name of the RIB export file, per spec: the
// output file is always ribs.csv in the working directory.
const ribOutputPath = "ribs.csv"

// Options configures a single simulation run.
type Options struct {
	RelationshipsPath string
	AnnouncementsPath string
	ROVASNsPath       string
	Verbose           bool
}

// NewLogger builds the run's structured logger: a colorized handler on
// stderr, at Info level by default and Debug under verbose.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}

// Run executes one full simulation: load the AS graph and inputs, seed
// announcements, check for a customer-provider cycle, propagate to
// convergence, print the diagnostic summary, and export the RIB. No
// output file is written unless propagation converges.
func Run(opts Options, log *slog.Logger) error {
	graph, err := LoadRelationships(opts.RelationshipsPath, log)
	if err != nil {
		return err
	}
	log.Info("loaded AS relationships", "asns", len(graph.ASNs()))

	rovASNs := make(map[state.ASN]bool)
	if opts.ROVASNsPath != "" {
		rovASNs, err = LoadROVASNs(opts.ROVASNsPath, log)
		if err != nil {
			return err
		}
		log.Info("loaded ROV-enabled ASes", "count", len(rovASNs))
	}

	announcements, err := LoadAnnouncements(opts.AnnouncementsPath, log)
	if err != nil {
		return err
	}
	log.Info("loaded announcements", "count", len(announcements))

	routing := state.NewRoutingState(rovASNs)
	for _, a := range announcements {
		routing.Seed(a.Origin, a.Prefix, a.ROVInvalid)
	}

	engine, err := NewEngine(graph, routing)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	log.Debug("flattened graph", "ranks", len(engine.Ranks.Groups))

	reports, runErr := engine.Run()
	for _, r := range reports {
		log.Debug("iteration complete", "iteration", r.Iteration, "total", r.Total, "delta", r.Delta)
	}
	PrintSummary(os.Stderr, reports, runErr == nil)
	if runErr != nil {
		log.Error(runErr.Error())
		return runErr
	}

	if err := ExportRIBCSV(ribOutputPath, routing); err != nil {
		return err
	}
	log.Info("wrote RIB", "path", ribOutputPath, "entries", routing.TotalRoutes())
	return nil
}
