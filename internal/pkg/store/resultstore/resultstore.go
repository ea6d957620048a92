// Package resultstore persists a run's result.Result to MongoDB, one
// upserted document per named run.
package resultstore

import (
	"context"
	"encoding/json"
	"io/ioutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ohowland/feems/internal/pkg/fuel"
	"github.com/ohowland/feems/internal/pkg/result"
)

// Handler persists results against one configured MongoDB database. A
// run is batch/single-threaded (spec §5), so unlike the actor-style
// handlers this package is modeled on, Handler has no inbox or Process
// loop: callers call Save directly after a run completes.
type Handler struct {
	client   *mongo.Client
	database string
	config   config
}

type config struct {
	URI      string `json:"URI"`
	Database string `json:"Database"`
	Port     string `json:"Port"`
}

// New loads a Handler's connection config from a JSON file and opens
// the underlying client. The client is not connected until the first
// Save call.
func New(configPath string) (Handler, error) {
	jsonConfig, err := ioutil.ReadFile(configPath)
	if err != nil {
		return Handler{}, err
	}
	cfg := config{}
	if err := json.Unmarshal(jsonConfig, &cfg); err != nil {
		return Handler{}, err
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.URI + ":" + cfg.Port))
	if err != nil {
		return Handler{}, err
	}

	return Handler{client: client, database: cfg.Database, config: cfg}, nil
}

// resultDoc flattens result.Result's unexported FuelConsumption bag
// into an explicit Fuels slice, since bson (like encoding/json) cannot
// see unexported fields.
type resultDoc struct {
	RunID         string                     `bson:"runID"`
	Name          string                     `bson:"name"`
	Fuels         []fuel.Fuel                `bson:"fuels"`
	CO2           result.CO2EmissionTotalKG  `bson:"co2EmissionTotalKG"`
	TotalEmission map[string]float64         `bson:"totalEmissionKG"`
	Energy        result.EnergyTotalsMJ      `bson:"energy"`
	RunningHours  result.RunningHoursTotalHR `bson:"runningHours"`
	DetailResult  []result.DetailRow         `bson:"detailResult"`
}

func toDoc(runID, name string, res *result.Result) resultDoc {
	return resultDoc{
		RunID:         runID,
		Name:          name,
		Fuels:         res.MultiFuelConsumptionTotalKG.Entries(),
		CO2:           res.CO2EmissionTotalKG,
		TotalEmission: res.TotalEmissionKG,
		Energy:        res.Energy,
		RunningHours:  res.RunningHours,
		DetailResult:  res.DetailResult,
	}
}

// Save upserts one run's result under runID, replacing any prior
// document with the same ID (a run is expected to be re-run in place
// during iteration, not appended to).
func (h Handler) Save(ctx context.Context, runID, name string, res *result.Result) error {
	if err := h.client.Connect(ctx); err != nil {
		return err
	}
	defer h.client.Disconnect(ctx)

	opts := options.Update().SetUpsert(true)
	_, err := h.client.Database(h.database).Collection("runResults").UpdateOne(
		ctx,
		bson.M{"runID": runID},
		bson.D{{Key: "$set", Value: toDoc(runID, name, res)}},
		opts,
	)
	return err
}
