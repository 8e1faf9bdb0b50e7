// Command dampfit analyzes a damper dyno run file: it fits the Adj-only
// and Full force curves for each stroke, reports the adjuster authority
// against the 15-20% target band and the internal pressure balance, and
// appends the run to the session log.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/fenianpark/dampfit"
	"github.com/fenianpark/dampfit/authority"
	"github.com/fenianpark/dampfit/compress"
	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/fitting"
	"github.com/fenianpark/dampfit/pressure"
	"github.com/fenianpark/dampfit/session"
)

// plotSamples matches the original tool's dense curve resolution.
const plotSamples = 200

// runFile is the JSON input produced by the measurement collection layer.
type runFile struct {
	Geometry          pressure.Geometry `json:"geometry"`
	Model             string            `json:"model"`
	ReferenceVelocity float64           `json:"reference_velocity"`
	Compression       []dyno.Sample     `json:"compression"`
	Rebound           []dyno.Sample     `json:"rebound,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "path to run file JSON (required)")
	modelName := flag.String("model", "", "override curve model: linear, quadratic or cubic")
	velocity := flag.Float64("velocity", 0, "override reference velocity (m/s)")
	exportPath := flag.String("export", "", "export the session log as a compressed archive")
	codecName := flag.String("codec", "zstd", "archive codec: none, zstd, s2 or lz4")
	flag.Parse()

	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "error: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	run, err := readRunFile(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("failed to read run file")
	}

	if *modelName != "" {
		run.Model = *modelName
	}
	model, err := fitting.ModelFromString(run.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid curve model")
	}

	refVelocity := run.ReferenceVelocity
	if *velocity != 0 {
		refVelocity = *velocity
	}

	sessionLog, err := session.NewLog(session.WithDataDir(cfg.DataDir))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session log")
	}

	log.Info().Str("model", model.String()).Float64("velocity", refVelocity).Msg("starting analysis")

	strokes := []struct {
		stroke dyno.Stroke
		rows   []dyno.Sample
	}{
		{dyno.StrokeCompression, run.Compression},
		{dyno.StrokeRebound, run.Rebound},
	}
	for _, s := range strokes {
		if len(s.rows) == 0 {
			log.Debug().Stringer("stroke", s.stroke).Msg("no samples, skipping stroke")
			continue
		}
		if err := analyzeStroke(s.stroke, s.rows, model, refVelocity, run.Geometry, sessionLog); err != nil {
			log.Fatal().Err(err).Stringer("stroke", s.stroke).Msg("analysis failed")
		}
	}

	if *exportPath != "" {
		ct, err := compress.TypeFromString(*codecName)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid archive codec")
		}
		if err := sessionLog.Export(*exportPath, ct); err != nil {
			log.Fatal().Err(err).Msg("failed to export session archive")
		}
		log.Info().Str("path", *exportPath).Stringer("codec", ct).Msg("session archive exported")
	}
}

// readRunFile loads and decodes the run file.
func readRunFile(path string) (runFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runFile{}, err
	}

	var run runFile
	if err := json.Unmarshal(data, &run); err != nil {
		return runFile{}, fmt.Errorf("parse run file: %w", err)
	}

	return run, nil
}

// analyzeStroke fits one stroke's table, prints the report and appends the
// session record. No record is written when any step fails.
func analyzeStroke(stroke dyno.Stroke, rows []dyno.Sample, model fitting.Model,
	refVelocity float64, geo pressure.Geometry, sessionLog *session.Log,
) error {
	set, err := dyno.NewMeasurementSet(rows)
	if err != nil {
		return err
	}

	adj, full, err := dampfit.FitPair(set, model)
	if err != nil {
		return err
	}

	res, err := authority.Compute(adj, full, refVelocity)
	if err != nil {
		return err
	}
	peak, err := authority.Peak(set)
	if err != nil {
		return err
	}

	printReport(stroke, adj, full, res, peak, geo)

	rec := session.NewRecord(set, stroke, adj, full, res, peak, sessionLog.Now())
	if err := sessionLog.Append(rec); err != nil {
		return err
	}
	log.Info().Str("fingerprint", rec.Fingerprint).Stringer("stroke", stroke).Msg("session record appended")

	return nil
}

// printReport writes the human-readable result block for one stroke.
func printReport(stroke dyno.Stroke, adj, full *fitting.Curve,
	res, peak authority.Result, geo pressure.Geometry,
) {
	fmt.Printf("== %s ==\n", stroke)
	fmt.Printf("Adj-only: %s (R² %.4f, RMSE %.2f N)\n", adj.Formula(), adj.RSquared(), adj.RMSE())
	fmt.Printf("Full:     %s (R² %.4f, RMSE %.2f N)\n", full.Formula(), full.RSquared(), full.RMSE())
	fmt.Printf("Adjuster authority at %.2f m/s: %.2f%% (%s)\n", res.Velocity, res.Percent, res.Rating)
	fmt.Printf("Peak adjuster ratio: %.1f%% at %.2f m/s (%s)\n", peak.Percent, peak.Velocity, peak.Rating)

	switch peak.Rating {
	case authority.BelowTarget:
		fmt.Println("Warning: adjuster below 15% authority will have little to no real effect.")
	case authority.AboveTarget:
		fmt.Println("Warning: above 20% the adjuster is doing too much of the job.")
	}

	if err := geo.Validate(); err == nil {
		bal := geo.Balance(full.Eval(res.Velocity), full.Eval(res.Velocity))
		fmt.Printf("Pressure balance: baseline %.1f bar, compression %.1f bar, rebound %.1f bar\n",
			bal.BaselineBar, bal.CompressionBar, bal.ReboundBar)
	}

	// Dense curve sampling for external plotting tools.
	minV, maxV := adj.Source().VelocityRange()
	_, adjDense := adj.Sample(minV, maxV, plotSamples)
	_, fullDense := full.Sample(minV, maxV, plotSamples)
	fmt.Printf("Curve range %0.2f-%0.2f m/s: adj %.0f-%.0f N, full %.0f-%.0f N\n\n",
		minV, maxV, adjDense[0], adjDense[plotSamples-1], fullDense[0], fullDense[plotSamples-1])
}
