package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"

	ogum "github.com/huyraestevao/ogumsoftware"
)

var (
	schedule  string
	material  string
	ea        float64
	preExp    float64
	order     float64
	x0        float64
	output    string
	asCSV     bool
	asJSON    bool
	timestamp bool
	wg        sync.WaitGroup
)

func init() {
	flag.StringVar(&schedule, "schedule", "", "path to a CSV file with time (s) and temperature (K) columns")
	flag.StringVar(&material, "material", "", "material name from the OGUM_CONFIG material library (overrides -Ea/-A/-n)")
	flag.Float64Var(&ea, "Ea", 0, "activation energy in J/mol")
	flag.Float64Var(&preExp, "A", 0, "pre-exponential factor in 1/s")
	flag.Float64Var(&order, "n", 0, "reaction order exponent")
	flag.Float64Var(&x0, "x0", ogum.DefaultInitialDensity, "initial relative density, inside (0,1)")
	flag.StringVar(&output, "o", "sinter", "base name of the exported files")
	flag.BoolVar(&asCSV, "csv", true, "export the trajectory as CSV")
	flag.BoolVar(&asJSON, "json", false, "export the trajectory as JSON")
	flag.BoolVar(&timestamp, "timestamp", false, "add a timestamp to the exported file names")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "sinter")

	if schedule == "" {
		logger.Log("level", "critical", "err", "a -schedule CSV file is required")
		os.Exit(1)
	}

	params := ogum.Params{Ea: ea, A: preExp, N: order}
	if material != "" {
		var err error
		params, err = ogum.Material(material)
		if err != nil {
			logger.Log("level", "critical", "material", material, "err", err)
			os.Exit(1)
		}
	}

	t, T, err := ogum.LoadScheduleCSV(schedule)
	if err != nil {
		logger.Log("level", "critical", "schedule", schedule, "err", err)
		os.Exit(1)
	}

	solver, err := ogum.NewWithLogger(params, logger)
	if err != nil {
		logger.Log("level", "critical", "err", err)
		os.Exit(1)
	}
	traj, err := solver.SolveSchedule(t, T, x0)
	if err != nil {
		logger.Log("level", "critical", "status", "failed", "err", err)
		os.Exit(1)
	}

	conf := ogum.ExportConfig{Filename: output, AsCSV: asCSV, AsJSON: asJSON, Timestamp: timestamp}
	if !conf.IsUseless() {
		recChan := make(chan ogum.Record, 1000)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ogum.StreamRecords(conf, recChan)
		}()
		for i := range t {
			Ti := T[0]
			if len(T) == len(t) {
				Ti = T[i]
			}
			recChan <- ogum.Record{Time: t[i], Temperature: Ti, Density: traj[i]}
		}
		close(recChan)
		wg.Wait()
	}

	fmt.Printf("solved %d points: x(%g s) = %f\n", len(traj), t[len(t)-1], traj[len(traj)-1])
}
