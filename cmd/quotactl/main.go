package main

import (
	"os"

	"github.com/wolfeidau/node-quotas/internal/version"
)

func main() {
	version.Binary = "quotactl"
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
