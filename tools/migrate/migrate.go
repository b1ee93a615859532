package main

import (
	"github.com/alphaoracle/alphaoracle/migration"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/log"
)

func init() {
	env.RegisterDefault("PGDATABASE", "alphaoracle")
	env.RegisterDefault("PGHOST", "127.0.0.1")
	env.RegisterDefault("PGUSER", "postgres")
	env.RegisterDefault("PGPASSWORD", "oracle")
}

func main() {
	if err := migration.Migration(db.DB()).Migrate(); err != nil {
		log.Fatal("database error", "action", "migration", "error", err)
	}
	db.DB().Close()
	log.Info("migration successful")
}
