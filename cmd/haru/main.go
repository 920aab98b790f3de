package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/haru/internal/cli"
)

func main() {
	// Root flags (there are no subcommands)
	date := flag.String("date", "", "starting day as YYYY-MM-DD (default: today)")
	debug := flag.Bool("debug", false, "write debug events to a log file")
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		Date:  *date,
		Debug: *debug,
	})
	os.Exit(code)
}
