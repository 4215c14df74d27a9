// Command checkholidays cross-checks the rule engine against the official
// national holiday CSV published by the Cabinet Office.
//
// The CSV URL is resolved dynamically via the e-Gov Data Portal CKAN API
// (recommended by the Digital Agency of Japan). If the API is unavailable,
// it falls back to well-known direct URLs.
//
// Every official row is classified against the engine. Rows the engine
// cannot produce by design (国民の休日, a weekday sandwiched between two
// named holidays) are reported as known gaps; anything else is a mismatch.
//
// Usage:
//
//	go run ./cmd/checkholidays -strict
//	go run ./cmd/checkholidays -file syukujitsu.csv
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	koyomi "github.com/rabitt1ove/jp-koyomi"
)

const (
	// CKAN API endpoint for the holiday dataset (recommended by Digital Agency).
	ckanAPIURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	// Fallback CSV URLs in case the CKAN API is unavailable.
	fallbackURL1 = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	fallbackURL2 = "https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv"

	minExpectedRows = 1000

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum response sizes to prevent memory exhaustion.
	maxJSONResponseSize = 1 * 1024 * 1024 // 1 MB for CKAN API response
	maxCSVResponseSize  = 5 * 1024 * 1024 // 5 MB for CSV data

	userAgent = "jp-koyomi-checker/1.0 (https://github.com/rabitt1ove/jp-koyomi)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedCSVHosts is the set of hostnames allowed for CSV download URLs.
// This prevents SSRF if the CKAN API returns an unexpected URL.
var allowedCSVHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

// ckanResponse represents the relevant parts of the CKAN API response.
type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []struct {
			URL    string `json:"url"`
			Format string `json:"format"`
		} `json:"resources"`
	} `json:"result"`
}

// holiday is one row of the official CSV.
type holiday struct {
	date koyomi.Date
	name string
}

func main() {
	strict := flag.Bool("strict", false, "exit non-zero on any mismatch other than known gaps")
	file := flag.String("file", "", "check a local Shift_JIS CSV instead of downloading it")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("checkholidays: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, *file, *strict); err != nil {
		log.Printf("error: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, file string, strict bool) error {
	holidays, err := load(ctx, file)
	if err != nil {
		return err
	}
	log.Printf("loaded %d official holidays", len(holidays))

	findings := compare(holidays)
	if failures := report(out, findings); strict && failures > 0 {
		return fmt.Errorf("%d mismatches against the official list", failures)
	}
	return nil
}

func load(ctx context.Context, file string) ([]holiday, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		holidays, err := parseCSV(transform.NewReader(bytes.NewReader(b), japanese.ShiftJIS.NewDecoder()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		return holidays, nil
	}

	client := &http.Client{Timeout: httpTimeout}
	body, err := fetchCSV(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch CSV: %w", err)
	}
	holidays, err := parseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(holidays) < minExpectedRows {
		return nil, fmt.Errorf("validation failed: expected at least %d rows, got %d", minExpectedRows, len(holidays))
	}
	return holidays, nil
}

// retryable reports whether an HTTP status is worth another attempt.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// backoff waits before the given attempt (the first attempt is 0).
func backoff(ctx context.Context, attempt int) error {
	if attempt == 0 {
		return nil
	}
	delay := retryBaseDelay * time.Duration(1<<(attempt-1))
	log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// resolveCSVURLWithRetry retries resolveCSVURLFrom on retryable statuses
// and network errors.
func resolveCSVURLWithRetry(ctx context.Context, client *http.Client, apiURL string) (string, error) {
	var lastErr error
	for attempt := range maxRetries {
		if err := backoff(ctx, attempt); err != nil {
			return "", err
		}
		u, err := resolveCSVURLFrom(ctx, client, apiURL)
		if err == nil {
			return u, nil
		}
		lastErr = err
		var te *transientError
		if !errors.As(err, &te) {
			return "", err
		}
	}
	return "", lastErr
}

// statusError is returned for a non-200 response.
type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.url, e.code)
}

// transientError marks failures that may succeed on retry.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// resolveCSVURLFrom queries the given CKAN API endpoint to get the current CSV download URL.
func resolveCSVURLFrom(ctx context.Context, client *http.Client, apiURL string) (string, error) {
	log.Printf("resolving CSV URL via CKAN API: %s", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &transientError{fmt.Errorf("CKAN API request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		se := &statusError{url: apiURL, code: resp.StatusCode}
		if retryable(resp.StatusCode) {
			return "", &transientError{se}
		}
		return "", se
	}

	var ckan ckanResponse
	limited := io.LimitReader(resp.Body, maxJSONResponseSize)
	if err := json.NewDecoder(limited).Decode(&ckan); err != nil {
		return "", fmt.Errorf("CKAN API response decode failed: %w", err)
	}

	if !ckan.Success {
		return "", fmt.Errorf("CKAN API returned success=false")
	}

	for _, r := range ckan.Result.Resources {
		if strings.EqualFold(r.Format, "CSV") && r.URL != "" {
			if err := validateCSVURL(r.URL); err != nil {
				return "", fmt.Errorf("CKAN returned invalid URL: %w", err)
			}
			log.Printf("  resolved URL: %s", r.URL)
			return r.URL, nil
		}
	}

	return "", fmt.Errorf("no CSV resource found in CKAN response")
}

// validateCSVURL checks that a URL points to an allowed host (SSRF prevention).
func validateCSVURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedCSVHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchCSV resolves the CSV URL and fetches it with retries.
// Strategy: CKAN API -> fallback URL 1 -> fallback URL 2.
func fetchCSV(ctx context.Context, client *http.Client) (io.Reader, error) {
	return fetchCSVWithFallbacks(ctx, client, ckanAPIURL, fallbackURL1, fallbackURL2)
}

// fetchCSVWithFallbacks resolves the CSV URL via the given CKAN API and fetches it with retries.
func fetchCSVWithFallbacks(ctx context.Context, client *http.Client, ckanURL, fb1, fb2 string) (io.Reader, error) {
	var urls []string

	if resolved, err := resolveCSVURLWithRetry(ctx, client, ckanURL); err != nil {
		log.Printf("  CKAN API failed: %v (falling back to direct URLs)", err)
	} else {
		urls = append(urls, resolved)
	}

	// Skip a fallback the CKAN API already resolved to.
	for _, fb := range []string{fb1, fb2} {
		if len(urls) == 0 || urls[0] != fb {
			urls = append(urls, fb)
		}
	}

	var lastErr error
	for _, u := range urls {
		reader, err := fetchWithRetry(ctx, client, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		return reader, nil
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL with exponential backoff retries and returns
// the body decoded from Shift_JIS.
func fetchWithRetry(ctx context.Context, client *http.Client, rawURL string) (io.Reader, error) {
	var lastErr error
	for attempt := range maxRetries {
		if err := backoff(ctx, attempt); err != nil {
			return nil, err
		}

		log.Printf("fetching %s", rawURL)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", rawURL, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if retryable(resp.StatusCode) {
			resp.Body.Close()
			lastErr = &statusError{url: rawURL, code: resp.StatusCode}
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &statusError{url: rawURL, code: resp.StatusCode}
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVResponseSize))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("GET %s: reading body: %w", rawURL, err)
			continue
		}
		return transform.NewReader(bytes.NewReader(body), japanese.ShiftJIS.NewDecoder()), nil
	}
	return nil, lastErr
}

// parseCSV parses the Cabinet Office holiday CSV and validates its format.
func parseCSV(r io.Reader) ([]holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}
	if !strings.Contains(header[0], "国民の祝日") {
		return nil, fmt.Errorf("unexpected header: %q (expected to contain '国民の祝日')", header[0])
	}

	var holidays []holiday
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])

		if dateStr == "" || name == "" {
			continue
		}

		t, err := time.Parse("2006/1/2", dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, dateStr, err)
		}

		holidays = append(holidays, holiday{
			date: koyomi.NewDate(t.Year(), t.Month(), t.Day()),
			name: name,
		})
	}

	return holidays, nil
}
