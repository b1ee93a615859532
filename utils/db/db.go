package db

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

var (
	db   *gorm.DB
	once sync.Once
)

// DB is a singleton wrapper to the gorm database object.
func DB() *gorm.DB {
	var err error

	once.Do(func() {
		db, err = NewDB()
		if err != nil {
			log.Panic("database initialization failure", "error", err)
		}
	})

	return db
}

// NewDB opens a fresh Postgres connection using the PG* environment
// variables, optionally overridden by the supplied options map.
func NewDB(optionsList ...map[string]string) (dbT *gorm.DB, err error) {
	sslmode := env.GetVar("PGSSLMODE")
	host := env.GetVar("PGHOST")
	user := env.GetVar("PGUSER")
	dbname := env.GetVar("PGDATABASE")
	password := env.GetVar("PGPASSWORD")
	logDBString := env.GetVar("LOG_DB")

	if len(optionsList) != 0 {
		for key, val := range optionsList[0] {
			switch key {
			case "PGHOST":
				host = val
			case "PGUSER":
				user = val
			case "PGDATABASE":
				dbname = val
			case "PGPASSWORD":
				password = val
			case "PGSSLMODE":
				sslmode = val
			case "LOG_DB":
				logDBString = val
			}
		}
	}

	if sslmode == "" {
		sslmode = "disable"
	}

	params := fmt.Sprintf(
		"host=%v user=%v dbname=%v sslmode=%v password=%v",
		host, user, dbname, sslmode, password,
	)

	dbT, err = gorm.Open("postgres", params)
	if err != nil {
		return nil, err
	}

	dbT.DB().SetMaxOpenConns(20)
	if maxOpenConns := env.GetVar("DB_MAX_OPEN_CONNS"); maxOpenConns != "" {
		if n, err := strconv.Atoi(maxOpenConns); err != nil {
			log.Warn("parse error DB_MAX_OPEN_CONNS", "error", err)
		} else {
			dbT.DB().SetMaxOpenConns(n)
		}
	}

	// so it doesn't reuse stale connections
	dbT.DB().SetConnMaxLifetime(30 * time.Minute)

	logDB, _ := strconv.ParseBool(logDBString)
	dbT.LogMode(logDB)

	return dbT, nil
}

// MockDB swaps the singleton for an sqlmock-backed handle.
// Used for testing only.
func MockDB() sqlmock.Sqlmock {
	_, mock, err := sqlmock.NewWithDSN("sqlmock_db_0")
	if err != nil {
		panic("failed to mock db")
	}
	once.Do(func() {})
	db, err = gorm.Open("sqlmock", "sqlmock_db_0")
	if err != nil {
		panic("failed to open mocked db")
	}
	return mock
}

func Begin() *gorm.DB {
	return DB().Begin()
}

// Reconnect pings the database to re-establish a connection.
func Reconnect() error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	return db.DB().Ping()
}

// IsConnectionError returns true if the supplied error is a connection
// related error based on the PostgreSQL connection exceptions class.
func IsConnectionError(err error) bool {
	return pqErrorCode(err) == "08"
}

func IsSerializabilityError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "could not serialize access due to concurrent update")
}

func pqErrorCode(err error) pq.ErrorCode {
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return pqErr.Code[0:2]
		}
	}
	return ""
}
