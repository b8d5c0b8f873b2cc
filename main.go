package main

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Errorf("go-base32: %s", err)
		os.Exit(2)
	}
}
