// Package natshandler publishes a completed run's summary to a NATS
// subject, for downstream dashboards or fleet-monitoring subscribers.
//
// Unlike the teacher's inbox/Process actor loop, a run here is
// single-threaded and batch (spec §5): there is nothing to
// continuously relay, so Handler exposes one Publish call made
// directly after a run finishes rather than a background goroutine
// draining a channel.
package natshandler

import (
	"encoding/json"
	"io/ioutil"
	"log"

	nats "github.com/nats-io/nats.go"

	"github.com/ohowland/feems/internal/pkg/result"
)

// Handler publishes run summaries to one configured NATS server.
type Handler struct {
	nc     *nats.Conn
	config config
}

type config struct {
	Server  string `json:"Server"`
	Subject string `json:"Subject"`
}

// Summary is the compact payload published per run: callers who only
// need fleet-level totals can subscribe without pulling the full
// DetailResult time series.
type Summary struct {
	RunID        string                     `json:"runID"`
	FuelKG       float64                    `json:"fuelKG"`
	CO2          result.CO2EmissionTotalKG  `json:"co2EmissionTotalKG"`
	RunningHours result.RunningHoursTotalHR `json:"runningHours"`
}

// New loads a Handler's connection config from a JSON file and
// connects to the NATS server.
func New(configPath string) (Handler, error) {
	jsonConfig, err := ioutil.ReadFile(configPath)
	if err != nil {
		return Handler{}, err
	}
	cfg := config{}
	if err := json.Unmarshal(jsonConfig, &cfg); err != nil {
		return Handler{}, err
	}

	server := cfg.Server
	if server == "" {
		server = nats.DefaultURL
	}
	nc, err := nats.Connect(server)
	if err != nil {
		return Handler{}, err
	}

	return Handler{nc: nc, config: cfg}, nil
}

// Close releases the underlying NATS connection.
func (h Handler) Close() {
	h.nc.Close()
}

// Publish summarizes a run's result and publishes it to the
// configured subject.
func (h Handler) Publish(runID string, res *result.Result) error {
	var fuelKG float64
	for _, f := range res.MultiFuelConsumptionTotalKG.Entries() {
		for _, kg := range f.MassOrMassFraction {
			fuelKG += kg
		}
	}

	summary := Summary{
		RunID:        runID,
		FuelKG:       fuelKG,
		CO2:          res.CO2EmissionTotalKG,
		RunningHours: res.RunningHours,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	if err := h.nc.Publish(h.config.Subject, data); err != nil {
		log.Printf("unable to publish to nats server: %v", err)
		return err
	}
	return nil
}
