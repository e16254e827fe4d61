package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/atharv3903/citygraph/internal/cache"
	"github.com/atharv3903/citygraph/internal/db"
	"github.com/atharv3903/citygraph/internal/model"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "citygraph server base URL")
	dsn := flag.String("dsn", "", "MySQL DSN to read location names from (default: ask the server)")
	clients := flag.Int("clients", 1, "concurrent closed-loop clients")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	flag.Parse()

	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        500,
			MaxIdleConnsPerHost: 500,
			IdleConnTimeout:     90 * time.Second,
		},
		Timeout: 10 * time.Second,
	}

	names, err := loadNames(client, *server, *dsn)
	if err != nil {
		log.Fatal(err)
	}
	if len(names) == 0 {
		log.Fatal("no locations to query")
	}
	log.Printf("Loaded %d locations", len(names))

	// clear cache before test to avoid cumulative stats
	resp, err := client.Post(*server+"/debug/clear_cache", "text/plain", nil)
	if err != nil {
		log.Fatalf("failed to clear cache: %v", err)
	}
	resp.Body.Close()
	log.Println("Cache cleared")

	log.Printf("Running loadgen for %v with %d clients…", *duration, *clients)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		latencies []time.Duration
		totalReq  int64
		totalErr  int64
		totalHit  int64
	)

	for w := 0; w < *clients; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

			for ctx.Err() == nil {
				src := names[rnd.Intn(len(names))]
				dst := names[rnd.Intn(len(names))]

				start := time.Now()
				rr, err := route(client, *server, src, dst)
				lat := time.Since(start)

				mu.Lock()
				totalReq++
				latencies = append(latencies, lat)
				switch {
				case err != nil:
					totalErr++
				case rr.CacheHit:
					totalHit++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	var st cache.Stats
	if resp, err := client.Get(*server + "/debug/cache_stats"); err == nil {
		json.NewDecoder(resp.Body).Decode(&st)
		resp.Body.Close()
	}

	fmt.Println("\n========== LOADGEN SUMMARY ==========")
	fmt.Printf("Total Requests: %d\n", totalReq)
	fmt.Printf("Errors: %d\n", totalErr)
	fmt.Printf("Throughput: %.2f req/s\n", float64(totalReq)/duration.Seconds())

	if totalReq > 0 {
		fmt.Printf("RouteCache Hit Rate: %.1f%%\n", float64(totalHit)/float64(totalReq)*100)
	}
	fmt.Printf("Cache entries=%d gets=%d hits=%d puts=%d evictions=%d\n",
		st.Entries, st.Gets, st.Hits, st.Puts, st.Evictions)

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		var sum time.Duration
		for _, l := range latencies {
			sum += l
		}
		fmt.Printf("Avg Latency: %v\n", sum/time.Duration(len(latencies)))
		fmt.Printf("P50: %v  P95: %v  P99: %v\n",
			percentile(latencies, 0.50), percentile(latencies, 0.95), percentile(latencies, 0.99))
		fmt.Printf("Fastest: %v\n", latencies[0])
		fmt.Printf("Slowest: %v\n", latencies[len(latencies)-1])
	}

	fmt.Println("=====================================")
}

func loadNames(client *http.Client, server, dsn string) ([]string, error) {
	if dsn != "" {
		conn, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		return db.Store{DB: conn}.Names(context.Background())
	}

	resp, err := client.Get(server + "/locations")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, err
	}
	return names, nil
}

func route(client *http.Client, server, src, dst string) (model.RouteResponse, error) {
	q := url.Values{"src": {src}, "dst": {dst}}
	resp, err := client.Get(server + "/route?" + q.Encode())
	if err != nil {
		return model.RouteResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.RouteResponse{}, fmt.Errorf("route %s -> %s: %s", src, dst, resp.Status)
	}
	var rr model.RouteResponse
	err = json.NewDecoder(resp.Body).Decode(&rr)
	return rr, err
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p float64) time.Duration {
	i := int(float64(len(sorted)) * p)
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}
