// Package sqlstore persists summary run totals to a relational
// database over database/sql, for deployments that prefer a SQL
// warehouse over resultstore's MongoDB document store.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/ohowland/feems/internal/pkg/result"
)

// Handler persists result totals against one configured SQL database.
type Handler struct {
	db     *sql.DB
	config config
}

type config struct {
	Driver   string `json:"Driver"` // "mysql" or "postgres"
	Server   string `json:"Server"`
	Port     int    `json:"Port"`
	Username string `json:"Username"`
	Password string `json:"Password"`
	Database string `json:"Database"`
}

func (c config) dsn() string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Server, c.Port, c.Username, c.Password, c.Database)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", c.Username, c.Password, c.Server, c.Port, c.Database)
	}
}

// New loads a Handler's connection config from a JSON file, opens the
// driver, and ensures the run_totals table exists.
func New(configPath string) (Handler, error) {
	jsonConfig, err := ioutil.ReadFile(configPath)
	if err != nil {
		return Handler{}, err
	}
	cfg := config{}
	if err := json.Unmarshal(jsonConfig, &cfg); err != nil {
		return Handler{}, err
	}

	db, err := sql.Open(cfg.Driver, cfg.dsn())
	if err != nil {
		return Handler{}, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS run_totals (
		run_id TEXT PRIMARY KEY,
		fuel_kg DOUBLE PRECISION,
		co2_ttw_kg DOUBLE PRECISION,
		running_hours_main_engines DOUBLE PRECISION,
		running_hours_genset DOUBLE PRECISION
	)`); err != nil {
		return Handler{}, err
	}

	return Handler{db: db, config: cfg}, nil
}

// Close releases the underlying database/sql connection pool.
func (h Handler) Close() error {
	return h.db.Close()
}

// Save upserts one run's aggregate totals, keyed by runID.
func (h Handler) Save(ctx context.Context, runID string, res *result.Result) error {
	var totalFuelKG float64
	for _, f := range res.MultiFuelConsumptionTotalKG.Entries() {
		for _, kg := range f.MassOrMassFraction {
			totalFuelKG += kg
		}
	}

	var stmt string
	switch h.config.Driver {
	case "postgres":
		stmt = `INSERT INTO run_totals (run_id, fuel_kg, co2_ttw_kg, running_hours_main_engines, running_hours_genset)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (run_id) DO UPDATE SET fuel_kg = $2, co2_ttw_kg = $3, running_hours_main_engines = $4, running_hours_genset = $5`
	default:
		stmt = `REPLACE INTO run_totals (run_id, fuel_kg, co2_ttw_kg, running_hours_main_engines, running_hours_genset)
			VALUES (?, ?, ?, ?, ?)`
	}

	_, err := h.db.ExecContext(ctx, stmt, runID, totalFuelKG, res.CO2EmissionTotalKG.TankToWake,
		res.RunningHours.MainEngines, res.RunningHours.Genset)
	return err
}
