package main

import (
	"log"
	"os"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags)

	cli := commandLine{
		conf: core.NewConfig(),
		out:  os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
