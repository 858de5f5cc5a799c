package main

import (
	"log"
	"os"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/user"
	"github.com/erlanggafajar/nilai-ict/storage/database"
	sqlxrepos "github.com/erlanggafajar/nilai-ict/storage/database/sqlx"
	"github.com/jmoiron/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	if err := conf.Validate(); err != nil {
		logger.Fatal(err)
	}

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db))

	dbx := sqlx.NewDb(db, conf.Database.Engine)

	// start CLI
	cli := commandLine{
		db:     db,
		usrSvc: user.NewService(sqlxrepos.NewUserRepository(dbx)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
