package main

import (
	"fmt"
	"log"
	"os"

	"github.com/atharv3903/citygraph/internal/config"
	"github.com/atharv3903/citygraph/internal/loader"
	"github.com/atharv3903/citygraph/internal/prompt"
	"github.com/atharv3903/citygraph/internal/session"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("ignoring .env: %v", err)
	}
	cfg := config.FromFlagsSearch()
	if cfg.DataFile == "" {
		log.Fatalf("usage: citysearch [-threshold miles] [-cache-cap n] <coordinate file>")
	}

	locs, err := loader.ReadFile(cfg.DataFile)
	if err != nil {
		log.Fatal(err)
	}

	sess, _, err := session.Build(locs, cfg.Threshold, cfg.CacheCap)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Graph building complete.")

	if err := prompt.Run(sess, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
