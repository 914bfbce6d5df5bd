package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/account-server/internal/config"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/storage/migrations"
)

func main() {
	log := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		log.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dsn, err := env.DSN()
	if err != nil {
		log.WithError(err).Fatal("env.DSN")
		return
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	preMigrationVersion, postMigrationVersion, err := migrations.Up(db)
	if err != nil {
		log.WithError(err).Fatal("migrations.Up")
		return
	}

	log.WithFields(logrus.Fields{
		"database":             env.DatabaseName,
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
