package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ttacon/chalk"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/recording"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/config"
	"github.com/jamesrusso12/Ghost-Defiant-sub001/game/shootingrange"
)

func main() {
	configfile := flag.String("config", "", "JSON configuration file, relative to the executable folder unless absolute")
	scenario := flag.String("scenario", "forward", "Scenario to run ("+strings.Join(shootingrange.ScenarioNames(), ", ")+", all)")
	debug := flag.Bool("debug", false, "Keep the JSON debug lines on stdout")
	asJSON := flag.Bool("json", false, "Print reports as JSON")
	recordFile := flag.String("record", "", "Record every shot event as JSON lines in this file")

	flag.Parse()

	if !*debug {
		utils.SetOutput(os.Stderr)
	}

	cfg := config.Default()
	if *configfile != "" {
		var err error
		cfg, err = config.Load(utils.ResolvePath(*configfile))
		utils.Check(err, "Could not load configuration")
	}

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if *recordFile != "" {
		recorder = recording.MakeFileRecorder(utils.ResolvePath(*recordFile))
	}

	names := []string{*scenario}
	if *scenario == "all" {
		names = shootingrange.ScenarioNames()
	}

	for _, name := range names {
		_, ok := shootingrange.GetScenario(name)
		utils.Assert(ok, "Unknown scenario "+name+"; available: "+strings.Join(shootingrange.ScenarioNames(), ", "))

		report, err := shootingrange.RunRecorded(cfg, name, recorder)
		utils.Check(err, "Could not run scenario "+name)

		if *asJSON {
			data, err := json.Marshal(report)
			utils.Check(err, "Could not marshal report")
			fmt.Println(string(data))
			continue
		}

		printReport(report)
	}

	utils.Check(recorder.Close(), "Could not write recording")
}

func printReport(report shootingrange.Report) {
	scenario, _ := shootingrange.GetScenario(report.Scenario)

	fmt.Println(chalk.Cyan.Color(report.Scenario) + " " + chalk.Dim.TextStyle(scenario.Description))
	fmt.Printf(
		"  fired %d, hits %d, misses %d, expired %d, lost %d, rejected %d in %.3fs (%d steps)\n",
		report.Stats.Fired,
		report.Stats.Hits,
		report.Stats.Misses,
		report.Stats.Expired,
		report.Stats.Lost,
		report.Stats.Rejected,
		report.Duration,
		report.Steps,
	)

	for _, impact := range report.Impacts {
		fmt.Printf(
			"  %s %s at %s, normal %s, t=%.3fs (%s)\n",
			chalk.Green.Color("impact"),
			impact.Target,
			impact.Position,
			impact.Normal,
			impact.Time,
			impact.Detection,
		)
	}

	for _, miss := range report.Misses {
		fmt.Printf("  %s towards %s\n", chalk.Yellow.Color("miss"), miss.Endpoint)
	}

	for _, killed := range report.Killed {
		fmt.Printf("  %s %s\n", chalk.Red.Color("killed"), killed)
	}
}
