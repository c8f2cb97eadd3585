package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

type createTableRequest struct {
	Name    string       `json:"name"`
	Columns []columnInfo `json:"columns"`
}

type columnInfo struct {
	Name     string `json:"name"`
	Datatype string `json:"datatype"`
}

type insertRowRequest struct {
	Values map[string]any `json:"values"`
}

func main() {
	addr := flag.String("addr", "http://localhost:3000", "mydb server address")
	table := flag.String("table", "benchmark", "table name to create and fill")
	requests := flag.Int("requests", 1000, "number of insert requests")
	workers := flag.Int("workers", 8, "number of concurrent workers")
	flag.Parse()

	cli := resty.New().SetBaseURL(*addr)

	// Existing table from a previous run is fine, the benchmark just appends.
	_, err := cli.R().SetBody(createTableRequest{
		Name: *table,
		Columns: []columnInfo{
			{Name: "name", Datatype: "STRING"},
			{Name: "age", Datatype: "INTEGER"},
		},
	}).Post("/tables")
	if err != nil {
		log.Fatalf("create table failed: %v", err)
	}

	var failed atomic.Int64
	latencies := make([]time.Duration, *requests)
	jobs := make(chan int)

	var wg sync.WaitGroup
	started := time.Now()
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				begin := time.Now()
				resp, err := cli.R().SetBody(insertRowRequest{
					Values: map[string]any{
						"name": fmt.Sprintf("Spam%d", i),
						"age":  i,
					},
				}).Post("/tables/" + *table + "/rows")
				latencies[i] = time.Since(begin)
				if err != nil || resp.IsError() {
					failed.Add(1)
				}
			}
		}()
	}
	for i := 0; i < *requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(started)

	queryStart := time.Now()
	resp, err := cli.R().Get("/tables/" + *table + "/rows?columns=age,name")
	if err != nil || resp.IsError() {
		log.Fatalf("query failed: %v", err)
	}
	queryElapsed := time.Since(queryStart)

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	percentile := func(p float64) time.Duration {
		idx := int(float64(len(latencies)-1) * p)
		return latencies[idx]
	}

	fmt.Printf("inserts:    %d (%d failed) in %v\n", *requests, failed.Load(), elapsed)
	fmt.Printf("throughput: %.1f req/s\n", float64(*requests)/elapsed.Seconds())
	fmt.Printf("latency:    p50=%v p95=%v p99=%v\n", percentile(0.50), percentile(0.95), percentile(0.99))
	fmt.Printf("full scan:  %v\n", queryElapsed)
}
