// Command tune searches controller tunables for a target jump and run feel.
//
// Usage: go run ./cmd/tune -apex 64 -airtime 0.8 -output out/
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/platformer/config"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	apex := flag.Float64("apex", 64, "Target jump height in world units")
	airtime := flag.Float64("airtime", 0.8, "Target time off the floor per jump, seconds")
	topSpeed := flag.Float64("top-speed", 120, "Target running speed, world units per second")
	accelTime := flag.Float64("accel-time", 0.2, "Target time from rest to top speed, seconds")
	maxEvals := flag.Int("max-evals", 300, "Maximum number of evaluations")
	method := flag.String("method", "neldermead", "Search method: neldermead or cmaes")
	outputDir := flag.String("output", "", "Output directory for the log and best config (empty = print only)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()
	initRaw, err := params.ExtractFromConfig(baseCfg)
	if err != nil {
		log.Fatalf("reading start point: %v", err)
	}

	targets := Targets{Apex: *apex, Airtime: *airtime, TopSpeed: *topSpeed, AccelTime: *accelTime}
	evaluator := NewEvaluator(params, baseCfg, targets)

	var logWriter *csv.Writer
	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
		logFile, err := os.Create(filepath.Join(*outputDir, "tune_log.csv"))
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer logFile.Close()
		logWriter = csv.NewWriter(logFile)
		defer logWriter.Flush()

		header := []string{"eval", "fitness"}
		for _, spec := range params.Specs {
			header = append(header, spec.Name)
		}
		header = append(header, "apex", "airtime", "top_speed", "accel_time")
		logWriter.Write(header)
	}

	evalCount := 0
	bestFitness := evaluator.Evaluate(initRaw)
	bestParams := params.Clamp(initRaw)
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			if logWriter != nil {
				m := evaluator.LastMeasurement()
				row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.6f", fitness)}
				for _, v := range raw {
					row = append(row, fmt.Sprintf("%.4f", v))
				}
				row = append(row,
					fmt.Sprintf("%.3f", m.Apex),
					fmt.Sprintf("%.3f", m.Airtime),
					fmt.Sprintf("%.3f", m.TopSpeed),
					fmt.Sprintf("%.3f", m.AccelTime),
				)
				logWriter.Write(row)
			}
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0,
	}

	var m optimize.Method
	switch *method {
	case "neldermead":
		m = &optimize.NelderMead{}
	case "cmaes":
		m = &optimize.CmaEsChol{InitStepSize: 0.2}
	default:
		log.Fatalf("unknown method %q", *method)
	}

	fmt.Printf("Tuning %d parameters with %s, max_evals=%d\n", params.Dim(), *method, *maxEvals)
	fmt.Printf("Targets: apex=%.1f airtime=%.2fs top_speed=%.1f accel_time=%.2fs\n",
		targets.Apex, targets.Airtime, targets.TopSpeed, targets.AccelTime)
	fmt.Printf("Start fitness: %.6f\n", bestFitness)

	if _, err := optimize.Minimize(problem, params.Normalize(initRaw), settings, m); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	fmt.Printf("\nDone after %d evaluations in %s\n", evalCount, time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("Best fitness: %.6f\n", bestFitness)

	best := evaluator.Evaluate(bestParams)
	got := evaluator.LastMeasurement()
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Path, bestParams[i])
	}
	fmt.Printf("Measured: apex=%.1f airtime=%.2fs top_speed=%.1f accel_time=%.2fs (fitness %.6f)\n",
		got.Apex, got.Airtime, got.TopSpeed, got.AccelTime, best)

	if *outputDir == "" {
		return
	}
	bestCfg := *baseCfg
	if err := params.ApplyToConfig(&bestCfg, bestParams); err != nil {
		log.Fatalf("applying best parameters: %v", err)
	}
	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}
