package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"

	"github.com/atharv3903/citygraph/internal/api"
	"github.com/atharv3903/citygraph/internal/config"
	"github.com/atharv3903/citygraph/internal/db"
	"github.com/atharv3903/citygraph/internal/loader"
	"github.com/atharv3903/citygraph/internal/model"
	"github.com/atharv3903/citygraph/internal/session"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("ignoring .env: %v", err)
	}
	cfg := config.FromFlagsServer()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("usage: server [-data coordinate file | -dsn mysql dsn] [-addr :8080] [-threshold miles] [-cache-cap n]: %v", err)
	}

	locs, err := loadLocations(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sess, edges, err := session.Build(locs, cfg.Threshold, cfg.CacheCap)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Graph built: %d locations, %d edges", sess.Graph().Len(), edges)

	srv := api.New(sess)

	log.Println("CITYGRAPH listening on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv))
}

func loadLocations(cfg config.ServerConfig) ([]model.Location, error) {
	if cfg.DataFile != "" {
		return loader.ReadFile(cfg.DataFile)
	}

	conn, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return db.Store{DB: conn}.Locations(context.Background())
}
