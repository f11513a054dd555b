package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/Jerok0/riot/internal/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(cmd.RunCmd(), "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
