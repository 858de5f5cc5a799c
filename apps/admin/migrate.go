package main

import (
	"github.com/erlanggafajar/nilai-ict/storage/database"
)

var migrateRunFunc = database.RunMigrationCommand // mockable

// migrate runs a goose command against the embedded migrations.
// args[0] is the command, the rest are its arguments.
func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return migrateRunFunc(args[0], cli.db, arguments...)
}
