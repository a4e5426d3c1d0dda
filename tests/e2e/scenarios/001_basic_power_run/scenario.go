package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	samplesPerFile = 400     // samples per power trace, one every 5ms
	sampleStepMs   = 5       // sampling period of every generated trace
	epochStartMs   = 1.7e12  // absolute timestamp of the first sample
	runPrefix      = "run01" // prefix of every generated file name
)

var (
	// regions cover [0,500), [500,1000), [1000,1500) ms; the last 500ms fall outside every region.
	regionNames = []string{"warmup", "compute", "teardown"}
	gpuDevices  = []string{"0", "1"}
)

// ### End - fixed configs

type sourceReport struct {
	Source  string `json:"source"`
	Signals []struct {
		Signal string `json:"signal"`
		Status string `json:"status"`
		Rows   int    `json:"rows"`
	} `json:"signals"`
	Correlation *struct {
		Status     string `json:"status"`
		Matched    int    `json:"matched"`
		Unknown    int    `json:"unknown"`
		SeriesRows int    `json:"seriesRows"`
	} `json:"correlation"`
}

type runReport struct {
	RunID   string         `json:"runId"`
	Sources []sourceReport `json:"sources"`
}

// main runs the e2e scenario: 001_basic_power_run
//
// Start the server against the scenario directories first:
//
//	POWER_ANALYTICS_INPUT_ROOT_DIR=.tmp/input POWER_ANALYTICS_OUTPUT_ROOT_DIR=.tmp/data go run ./cmd/server
//
// What it tests:
//   - Windowed aggregation of relative, absolute and per-device traces
//   - Stats extraction from .dat files
//   - Region correlation, pivot to a wide series and schema generation
//   - Run serialization: concurrent POST /runs answer 200 once and 409 otherwise
//
// Expected results:
//   - Every source reports its signals as written
//   - nvml_power and variorum correlate 300 samples to a region and 100 to unknown
//   - nvml_energy skips its correlation (no region files)
//   - The series and schema artifacts exist under the output directory
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the power analytics server
	parallel := 3                      // Number of concurrent run requests
	inputDir := ".tmp/input"           // Input directory relative to project root
	outputDir := ".tmp/data"           // Output directory relative to project root
	wantClean := true                  // If true, clean up both directories before running scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	inputPath := filepath.Join(projectRoot, inputDir)
	outputPath := filepath.Join(projectRoot, outputDir)

	if wantClean {
		for _, dir := range []string{inputPath, outputPath} {
			if err := os.RemoveAll(dir); err != nil {
				fmt.Fprintf(os.Stderr, "WARNING: Failed to clean %s: %v\n", dir, err)
			}
		}
	}

	fmt.Println("Starting e2e scenario: 001_basic_power_run")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("INPUT_PATH: %s\n", inputPath)
	fmt.Printf("OUTPUT_PATH: %s\n", outputPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	if err := generateInputs(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate inputs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Generated input files")

	var wg sync.WaitGroup
	var okRequests, conflictedRequests, otherRequests int64
	var report runReport
	var mu sync.Mutex
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body, err := postRun(baseURL)
			switch {
			case err != nil:
				fmt.Fprintf(os.Stderr, "ERROR: run request failed: %v\n", err)
				atomic.AddInt64(&otherRequests, 1)
			case status == http.StatusOK:
				atomic.AddInt64(&okRequests, 1)
				mu.Lock()
				defer mu.Unlock()
				if err := json.Unmarshal(body, &report); err != nil {
					fmt.Fprintf(os.Stderr, "ERROR: invalid report: %v\n", err)
				}
			case status == http.StatusConflict:
				atomic.AddInt64(&conflictedRequests, 1)
			default:
				fmt.Fprintf(os.Stderr, "ERROR: unexpected status %d: %s\n", status, body)
				atomic.AddInt64(&otherRequests, 1)
			}
		}()
	}
	wg.Wait()

	fmt.Println("=== Statistics ===")
	fmt.Printf("OK request: %d\n", okRequests)
	fmt.Printf("Conflicted request: %d\n", conflictedRequests)
	fmt.Printf("Other request: %d\n", otherRequests)
	if okRequests < 1 || otherRequests > 0 {
		fmt.Fprintln(os.Stderr, "ERROR: expected at least one successful run and no failures")
		os.Exit(1)
	}

	failures := checkReport(report)
	failures = append(failures, checkArtifacts(outputPath)...)
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
	}
	if len(failures) > 0 {
		os.Exit(1)
	}
	fmt.Printf("Run %s\n", report.RunID)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func regionIndex(relativeMs int) int {
	return relativeMs / 500
}

func powerAt(i int) float64 {
	return 50 + float64(i%20)
}

func generateInputs(root string) error {
	files := map[string]string{}

	var relative, absolute, energy, variorum, gpus strings.Builder
	relative.WriteString("time_relative_ms,power_watts\n")
	absolute.WriteString("timestamp_system_epoch_ms,power_watts\n")
	energy.WriteString("time_relative_ms,timestamp_system_epoch_ms,nvml_joules_energy\n")
	variorum.WriteString("time_relative_ms,timestamp_system_epoch_ms,variorum_power_watts\n")
	gpus.WriteString("timestamp_nanoseconds,power_watts,device_id\n")
	for i := 0; i < samplesPerFile; i++ {
		rel := i * sampleStepMs
		abs := int64(epochStartMs) + int64(rel)
		fmt.Fprintf(&relative, "%d,%.1f\n", rel, powerAt(i))
		fmt.Fprintf(&absolute, "%d,%.1f\n", abs, powerAt(i))
		fmt.Fprintf(&energy, "%d,%d,%.3f\n", rel, abs, float64(i)*0.25)
		fmt.Fprintf(&variorum, "%d,%d,%.1f\n", rel, abs, powerAt(i)+100)
		for _, device := range gpuDevices {
			fmt.Fprintf(&gpus, "%d,%.1f,%s\n", abs*1_000_000, powerAt(i), device)
		}
	}

	// nvml regions are relative milliseconds expressed in ns, variorum regions are epoch ns.
	var nvmlRegions, variorumRegions strings.Builder
	nvmlRegions.WriteString("name,start_time_ns,end_time_ns\n")
	variorumRegions.WriteString("name,start_time_ns,end_time_ns,duration_ns\n")
	for i, name := range regionNames {
		start := int64(i*500) * 1_000_000
		end := start + 499*1_000_000
		fmt.Fprintf(&nvmlRegions, "%s,%d,%d\n", name, start, end)
		epochStart := int64(epochStartMs)*1_000_000 + start
		fmt.Fprintf(&variorumRegions, "%s,%d,%d,%d\n", name, epochStart, epochStart+499*1_000_000, 499*1_000_000)
	}

	stats := "power statistics\naverage_power: 59.5\nmax_power: 69.0\nsamples: 400\n"

	files[filepath.Join("nvml_power", runPrefix+"-nvml-power-relative.csv")] = relative.String()
	files[filepath.Join("nvml_power", runPrefix+"-nvml-power.csv")] = absolute.String()
	files[filepath.Join("nvml_power", runPrefix+"-nvml-power.dat")] = stats
	files[filepath.Join("nvml_power", runPrefix+"-nvml-regions.csv")] = nvmlRegions.String()
	files[filepath.Join("nvml_energy", runPrefix+"-nvml-energy-relative.csv")] = energy.String()
	files[filepath.Join("nvml_energy", runPrefix+"-nvml-energy.csv")] = energy.String()
	files[filepath.Join("nvml_energy", runPrefix+"-nvml-energy.dat")] = "energy statistics\ntotal_energy: 99.75\n"
	files[filepath.Join("variorum", runPrefix+"-variorum-power-relative.csv")] = variorum.String()
	files[filepath.Join("variorum", runPrefix+"-variorum-power.csv")] = variorum.String()
	files[filepath.Join("variorum", runPrefix+"-variorum-power-gpus.csv")] = gpus.String()
	files[filepath.Join("variorum", runPrefix+"-variorum-power.dat")] = stats
	files[filepath.Join("variorum", runPrefix+"-regions.csv")] = variorumRegions.String()
	files[filepath.Join("variorum", runPrefix+"-variorum-power-kernels.csv")] =
		"kernel_id,name,type,start_time_ns,end_time_ns,duration_ns\n1,gemm,compute,1000000,3000000,2000000\n"

	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func postRun(baseURL string) (int, []byte, error) {
	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Post(baseURL+"/runs", "application/json", nil)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func checkReport(report runReport) []string {
	var failures []string
	if len(report.Sources) != 3 {
		return append(failures, fmt.Sprintf("expected 3 sources, got %d", len(report.Sources)))
	}
	for _, source := range report.Sources {
		for _, signal := range source.Signals {
			if signal.Status != "written" {
				failures = append(failures, fmt.Sprintf("%s/%s: status %s", source.Source, signal.Signal, signal.Status))
			}
		}
		c := source.Correlation
		switch source.Source {
		case "nvml_energy":
			if c == nil || c.Status != "skipped" {
				failures = append(failures, "nvml_energy: correlation should be skipped without region files")
			}
		default:
			// one sample per 5ms in a 499ms region: 100 per region, 100 outside.
			if c == nil || c.Status != "written" || c.Matched != 300 || c.Unknown != 100 {
				failures = append(failures, fmt.Sprintf("%s: unexpected correlation %+v", source.Source, c))
			}
		}
	}
	return failures
}

func checkArtifacts(outputPath string) []string {
	var failures []string
	for _, rel := range []string{
		"nvml_power/nvml_relative.csv",
		"nvml_power/nvml_stats.csv",
		"nvml_power/nvml_correlation.csv",
		"nvml_power/nvml_series.csv",
		"nvml_power/nvml_series.sql",
		"nvml_energy/nvml_energy_absolute.csv",
		"variorum/variorum_gpus.csv",
		"variorum/variorum_kernels.csv",
		"variorum/correlation.csv",
		"variorum/variorum_series.csv",
		"variorum/variorum_series.sql",
	} {
		if _, err := os.Stat(filepath.Join(outputPath, rel)); err != nil {
			failures = append(failures, fmt.Sprintf("missing artifact %s", rel))
		}
	}
	return failures
}
