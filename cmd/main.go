// Package main runs the MCBA ledger API and its bill payment scheduler.
package main

import (
	"github.com/go-petr/mcba-ledger/cmd/commands"

	_ "github.com/lib/pq"
)

func main() {
	commands.Execute()
}
