package main

import (
	"os"

	"github.com/recruiterlab/resume-screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
