package sqlstore

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDSNMySQL(t *testing.T) {
	cfg := config{Driver: "mysql", Server: "db.local", Port: 3306, Username: "u", Password: "p", Database: "feems"}
	assert.Equal(t, cfg.dsn(), "u:p@tcp(db.local:3306)/feems")
}

func TestDSNPostgres(t *testing.T) {
	cfg := config{Driver: "postgres", Server: "db.local", Port: 5432, Username: "u", Password: "p", Database: "feems"}
	assert.Equal(t, cfg.dsn(), "host=db.local port=5432 user=u password=p dbname=feems sslmode=disable")
}
