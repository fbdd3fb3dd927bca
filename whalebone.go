package main

import (
	"github.com/whalebone-dev/whalebone/cmd"
	"github.com/whalebone-dev/whalebone/pkg/env"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("whalebone failure", "error", err)
	}
}
