// Command feemsrun runs one batch FEEMS simulation from a topology
// description and a per-timestep input file, then persists and
// optionally publishes the result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"

	"github.com/ohowland/feems/internal/pkg/errs"
	"github.com/ohowland/feems/internal/pkg/events/natshandler"
	"github.com/ohowland/feems/internal/pkg/result"
	"github.com/ohowland/feems/internal/pkg/store/resultstore"
	"github.com/ohowland/feems/internal/pkg/system"
	"github.com/ohowland/feems/internal/pkg/topology"
)

func main() {
	topologyPath := flag.String("topology", "./config/topology.json", "path to topology description JSON")
	inputsPath := flag.String("inputs", "./config/inputs.json", "path to per-timestep inputs JSON")
	optionsPath := flag.String("options", "./config/options.json", "path to run options JSON")
	mongoConfigPath := flag.String("mongo-config", "", "path to resultstore MongoDB config JSON (optional)")
	natsConfigPath := flag.String("nats-config", "", "path to natshandler config JSON (optional)")
	runID := flag.String("run-id", "run-0", "identifier for this run, used by resultstore/natshandler")
	flag.Parse()

	log.Println("[Main] Building topology from", *topologyPath)
	sys, err := buildTopology(*topologyPath)
	if err != nil {
		panic(err)
	}

	log.Println("[Main] Staging inputs from", *inputsPath)
	if err := stageInputs(sys, *inputsPath); err != nil {
		panic(err)
	}

	opts, err := loadOptions(*optionsPath)
	if err != nil {
		panic(err)
	}

	log.Println("[Main] Running simulation")
	res, err := run(sys, opts)
	if err != nil {
		panic(err)
	}

	if len(res.Warnings) > 0 {
		log.Println("[Main] Run completed with warnings:", res.Warnings)
	}

	if *mongoConfigPath != "" {
		log.Println("[Main] Persisting result to MongoDB")
		if err := persistResult(*mongoConfigPath, *runID, sys.Name, res); err != nil {
			log.Println("resultstore error:", err)
		}
	}

	if *natsConfigPath != "" {
		log.Println("[Main] Publishing result summary to NATS")
		if err := publishResult(*natsConfigPath, *runID, res); err != nil {
			log.Println("natshandler error:", err)
		}
	}

	log.Println("[Main] Done")
}

func buildTopology(path string) (*topology.System, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	desc := topology.SystemDescription{}
	if err := json.Unmarshal(raw, &desc); err != nil {
		return nil, err
	}
	return topology.Build(desc)
}

func stageInputs(sys *topology.System, path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	inputs := topology.Inputs{}
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return err
	}
	return topology.StageInputs(sys, inputs)
}

func loadOptions(path string) (system.Options, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return system.Options{}, err
	}
	opts := system.Options{}
	if err := json.Unmarshal(raw, &opts); err != nil {
		return system.Options{}, err
	}
	return opts, nil
}

func run(sys *topology.System, opts system.Options) (*result.Result, error) {
	switch {
	case sys.Mechanical != nil && sys.Electric != nil:
		hybrid := system.HybridPropulsionSystem{Mechanical: sys.Mechanical, Electric: sys.Electric}
		return hybrid.Run(opts)
	case sys.Mechanical != nil:
		return sys.Mechanical.Run(opts)
	case sys.Electric != nil:
		return sys.Electric.Run(opts)
	default:
		return nil, &errs.ConfigurationError{Reason: "topology has neither an electric_system nor a mechanical_system"}
	}
}

func persistResult(configPath, runID, name string, res *result.Result) error {
	store, err := resultstore.New(configPath)
	if err != nil {
		return err
	}
	return store.Save(context.Background(), runID, name, res)
}

func publishResult(configPath, runID string, res *result.Result) error {
	handler, err := natshandler.New(configPath)
	if err != nil {
		return err
	}
	defer handler.Close()
	return handler.Publish(runID, res)
}
