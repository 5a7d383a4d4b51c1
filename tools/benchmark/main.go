package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultAccount = "ancientrelic"
)

type Config struct {
	BaseURL     string
	Account     string
	Requests    int           // Total requests per endpoint
	Concurrency int           // Number of concurrent workers
	Timeout     time.Duration // Per-request timeout
	OutputFile  string        // Output markdown file path (optional)
	Debug       bool
}

// EndpointStats accumulates request outcomes for one endpoint
type EndpointStats struct {
	Path      string
	Total     int
	Succeeded int
	Failed    int
	Latencies []time.Duration
	Elapsed   time.Duration
}

type result struct {
	latency time.Duration
	err     error
	status  int
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	endpoints := []string{
		"/health",
		fmt.Sprintf("/api/v1/accounts/%s/assets", cfg.Account),
		fmt.Sprintf("/api/v1/accounts/%s/recommendations", cfg.Account),
		fmt.Sprintf("/api/v1/accounts/%s/scenes", cfg.Account),
		"/api/v1/blends",
		"/api/v1/scenes",
	}

	fmt.Printf("Benchmarking %s (account: %s)\n", cfg.BaseURL, cfg.Account)
	fmt.Printf("Requests per endpoint: %d, concurrency: %d\n\n", cfg.Requests, cfg.Concurrency)

	client := &http.Client{Timeout: cfg.Timeout}

	var allStats []*EndpointStats
	for _, endpoint := range endpoints {
		select {
		case <-ctx.Done():
			fmt.Println("\n" + strings.Repeat("=", 80))
			fmt.Println("INTERRUPTED - PARTIAL RESULTS")
			fmt.Println(strings.Repeat("=", 80))
			printStats(allStats)
			return
		default:
		}

		stats := runEndpoint(ctx, client, cfg, endpoint)
		allStats = append(allStats, stats)

		fmt.Printf("%s %-55s %d/%d ok, %s avg, %s p99\n",
			statusEmoji(stats.Succeeded, stats.Failed),
			endpoint,
			stats.Succeeded, stats.Total,
			formatDuration(average(stats.Latencies)),
			formatDuration(percentile(stats.Latencies, 99)))
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printStats(allStats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cfg, allStats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

// runEndpoint fires cfg.Requests GETs at one endpoint with a worker pool
func runEndpoint(ctx context.Context, client *http.Client, cfg *Config, endpoint string) *EndpointStats {
	stats := &EndpointStats{Path: endpoint}

	jobs := make(chan struct{})
	results := make(chan result)

	var wg sync.WaitGroup
	for range cfg.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- doRequest(ctx, client, cfg.BaseURL+endpoint)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for range cfg.Requests {
			select {
			case <-ctx.Done():
				return
			case jobs <- struct{}{}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	start := time.Now()
	for res := range results {
		stats.Total++
		if res.err != nil || res.status >= 400 {
			stats.Failed++
			if cfg.Debug {
				fmt.Printf("  request failed: status=%d err=%v\n", res.status, res.err)
			}
			continue
		}
		stats.Succeeded++
		stats.Latencies = append(stats.Latencies, res.latency)
	}
	stats.Elapsed = time.Since(start)

	return stats
}

func doRequest(ctx context.Context, client *http.Client, url string) result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result{err: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return result{latency: latency, err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return result{latency: latency, status: resp.StatusCode}
}

func printStats(allStats []*EndpointStats) {
	fmt.Printf("\n%-55s %8s %8s %9s %9s %9s %9s %10s\n",
		"ENDPOINT", "OK", "FAIL", "AVG", "P50", "P90", "P99", "RATE")
	fmt.Println(strings.Repeat("-", 122))

	for _, stats := range allStats {
		fmt.Printf("%-55s %8d %8d %9s %9s %9s %9s %10s\n",
			stats.Path,
			stats.Succeeded,
			stats.Failed,
			formatDuration(average(stats.Latencies)),
			formatDuration(percentile(stats.Latencies, 50)),
			formatDuration(percentile(stats.Latencies, 90)),
			formatDuration(percentile(stats.Latencies, 99)),
			formatRate(stats.Total, stats.Elapsed))
	}
}

func writeMarkdownReport(path string, cfg *Config, allStats []*EndpointStats) error {
	var b strings.Builder

	b.WriteString("# Relic Atelier API Benchmark\n\n")
	b.WriteString(fmt.Sprintf("- **Target**: %s\n", cfg.BaseURL))
	b.WriteString(fmt.Sprintf("- **Account**: %s\n", cfg.Account))
	b.WriteString(fmt.Sprintf("- **Requests per endpoint**: %d\n", cfg.Requests))
	b.WriteString(fmt.Sprintf("- **Concurrency**: %d\n", cfg.Concurrency))
	b.WriteString(fmt.Sprintf("- **Date**: %s\n\n", time.Now().Format(time.RFC3339)))

	b.WriteString("| Endpoint | OK | Fail | Success | Avg | P50 | P90 | P99 | Rate |\n")
	b.WriteString("|----------|----|------|---------|-----|-----|-----|-----|------|\n")
	for _, stats := range allStats {
		b.WriteString(fmt.Sprintf("| `%s` | %d | %d | %s | %s | %s | %s | %s | %s |\n",
			stats.Path,
			stats.Succeeded,
			stats.Failed,
			percentageString(stats.Succeeded, stats.Total),
			formatDuration(average(stats.Latencies)),
			formatDuration(percentile(stats.Latencies, 50)),
			formatDuration(percentile(stats.Latencies, 90)),
			formatDuration(percentile(stats.Latencies, 99)),
			formatRate(stats.Total, stats.Elapsed)))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func average(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	var total time.Duration
	for _, l := range latencies {
		total += l
	}
	return total / time.Duration(len(latencies))
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.BaseURL, "base-url", defaultBaseURL, "API server base URL")
	flag.StringVar(&cfg.Account, "account", defaultAccount, "WAX account to benchmark with")
	flag.IntVar(&cfg.Requests, "requests", 100, "Requests per endpoint (default: 100)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent workers (default: 5)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Per-request timeout in seconds (default: 30)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	// Apply config file values for flags left at their defaults
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Error loading config file: %v\n", err)
			os.Exit(1)
		}
		if cfg.BaseURL == defaultBaseURL && fileCfg.BaseURL != "" {
			cfg.BaseURL = fileCfg.BaseURL
		}
		if cfg.Account == defaultAccount && fileCfg.Account != "" {
			cfg.Account = fileCfg.Account
		}
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}

	return cfg
}
