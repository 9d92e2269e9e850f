package main

import (
	"fmt"
	"os"

	"repkit/internal/services"
)

// exitInterrupted mirrors the conventional 128+SIGINT shell status.
const exitInterrupted = 130

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if services.IsCancellation(err) {
			os.Exit(exitInterrupted)
		}
		fmt.Fprintln(os.Stderr, "repkit:", err)
		os.Exit(1)
	}
}
