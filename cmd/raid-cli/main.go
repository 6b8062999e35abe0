package main

import (
	"raidchampions/cmd/raid-cli/commands"
	"raidchampions/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()
	commands.ExecuteContext(ctx)
}
