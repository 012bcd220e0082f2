package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/i5heu/boundedkit/internal/testbench"
	"github.com/i5heu/boundedkit/pkg/boundedqueue"
	"github.com/i5heu/boundedkit/pkg/boundedstack"
	"github.com/i5heu/boundedkit/pkg/config"
	"github.com/i5heu/boundedkit/pkg/linearlist"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Capacity       int     `json:"capacity"`
	KeySpace       int     `json:"key_space"`
	NumOps         int64   `json:"num_ops"`      // successful ops
	NumRejected    int64   `json:"num_rejected"` // full/empty/duplicate/not found
	TestDuration   string  `json:"test_duration"`
	ActualElapsed  string  `json:"actual_elapsed"`
	Throughput     float64 `json:"throughput_ops_sec"` // successful + rejected ops
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionID   string            `json:"session_id"`
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// Implementation represents one container driven through the testbench.
type Implementation struct {
	name        string
	description string
	pkgName     string
	features    []string
	newTarget   func(capacity int) (testbench.Target, error)
}

// outputMarkdownTable loads the JSON file and writes a Markdown table for
// the last session to w.
func outputMarkdownTable(w io.Writer, jsonFile string) error {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return fmt.Errorf("reading JSON file %q: %w", jsonFile, err)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return fmt.Errorf("unmarshalling JSON: %w", err)
	}
	if len(sessions) == 0 {
		return fmt.Errorf("no sessions found in %q", jsonFile)
	}
	// Use the last session for the table.
	lastSession := sessions[len(sessions)-1]
	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}
	type tableRow struct {
		implementation string
		pkgName        string
		features       string
		capacity       int
		throughput     float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		meta := implMetaMap[bench.Implementation]
		rows = append(rows, tableRow{
			implementation: bench.Implementation,
			pkgName:        meta.pkgName,
			features:       strings.Join(meta.features, ", "),
			capacity:       bench.Capacity,
			throughput:     bench.Throughput,
		})
	}
	// Sort rows by capacity, then throughput descending.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].capacity != rows[j].capacity {
			return rows[i].capacity < rows[j].capacity
		}
		return rows[i].throughput > rows[j].throughput
	})
	fmt.Fprintln(w, "## Last Session Benchmark Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Implementation           | Package         | Features                    | Capacity | Throughput (ops/sec) |")
	fmt.Fprintln(w, "|--------------------------|-----------------|-----------------------------|----------|----------------------|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %-24s | %-15s | %-27s | %8d | %20.0f |\n",
			r.implementation, r.pkgName, r.features, r.capacity, r.throughput)
	}
	return nil
}

func main() {
	// Flags.
	configFile := flag.String("config", "", "Path to a YAML benchmark profile; built-in defaults when empty")
	testIterations := flag.Int("iter", 0, "If non-zero, override the number of iterations per capacity")
	testDurationFlag := flag.Duration("duration", 0, "If non-zero, override the duration of each run")
	jsonExport := flag.Bool("json", false, "Export results as JSON to -jsonfile")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from -jsonfile and exit")
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON results file")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		if err := outputMarkdownTable(os.Stdout, *jsonFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	profile := config.Default()
	if *configFile != "" {
		var err error
		if profile, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
			os.Exit(1)
		}
	}
	if *testIterations > 0 {
		profile.Iterations = *testIterations
	}
	if *testDurationFlag > 0 {
		profile.Duration = *testDurationFlag
	}

	impls := getImplementations()
	totalTests := len(profile.Capacities) * profile.Iterations * len(impls)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Progress"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	results, err := runSession(impls, profile, func(r BenchmarkResult) {
		if bar != nil {
			bar.Clear()
		}
		fmt.Printf("    %s(cap=%d) => ops=%d, rejected=%d, throughput=%.0f ops/s, took=%s\n",
			r.Implementation, r.Capacity, r.NumOps, r.NumRejected, r.Throughput, r.ActualElapsed)
		if bar != nil {
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fr := FullReport{
		SessionID:   uuid.New().String(),
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  gatherSystemInfo(),
		Benchmarks:  results,
	}

	// If JSON export is requested, append the new session to the results file.
	if *jsonExport {
		if err := appendReport(*jsonFile, fr); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", *jsonFile)
	}
}

// runSession runs every implementation for every capacity and iteration in
// profile, calling onResult after each run.
func runSession(impls []Implementation, profile config.Profile, onResult func(BenchmarkResult)) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	for _, capacity := range profile.Capacities {
		fmt.Printf("  [Capacity: %d]\n", capacity)
		cfg := profile.Workload(capacity)
		for iteration := 1; iteration <= profile.Iterations; iteration++ {
			fmt.Printf("    iteration %d/%d\n", iteration, profile.Iterations)
			for _, impl := range impls {
				runtime.GC()
				result, err := runOne(impl, cfg, profile.Duration)
				if err != nil {
					return results, err
				}
				results = append(results, result)
				if onResult != nil {
					onResult(result)
				}
			}
		}
	}
	return results, nil
}

func runOne(impl Implementation, cfg config.Config, d time.Duration) (BenchmarkResult, error) {
	target, err := impl.newTarget(cfg.Capacity)
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("%s: %w", impl.name, err)
	}
	defer target.Close()

	ops, rejected, actualTime, err := testbench.RunTimedTest(target, cfg, d)
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("%s: %w", impl.name, err)
	}
	return BenchmarkResult{
		Implementation: impl.name,
		Capacity:       cfg.Capacity,
		KeySpace:       cfg.KeySpace,
		NumOps:         ops,
		NumRejected:    rejected,
		TestDuration:   d.String(),
		ActualElapsed:  actualTime.String(),
		Throughput:     float64(ops+rejected) / actualTime.Seconds(),
		Timestamp:      time.Now().Unix(),
		GoVersion:      runtime.Version(),
	}, nil
}

// appendReport appends fr to the JSON array stored in filename.
func appendReport(filename string, fr FullReport) error {
	var previous []FullReport
	if data, err := os.ReadFile(filename); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &previous); err != nil {
			return fmt.Errorf("existing %q is not a report list: %w", filename, err)
		}
	}
	data, err := json.MarshalIndent(append(previous, fr), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      runtime.NumCPU(),
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      runtime.GOARCH,
		TotalMemory: totalMemory,
	}
}

// getImplementations enumerates the containers under test.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "BoundedQueue",
			pkgName:     "boundedqueue",
			description: "Circular FIFO with sentinel-based emptiness, all slots usable.",
			features:    []string{"FIFO"},
			newTarget: func(capacity int) (testbench.Target, error) {
				q, err := boundedqueue.New(capacity)
				if err != nil {
					return nil, err
				}
				return queueTarget[*boundedqueue.Queue]{q: q}, nil
			},
		},
		{
			name:        "BoundedStack",
			pkgName:     "boundedstack",
			description: "Array-backed LIFO.",
			features:    []string{"LIFO"},
			newTarget: func(capacity int) (testbench.Target, error) {
				s, err := boundedstack.New(capacity)
				if err != nil {
					return nil, err
				}
				return stackTarget[*boundedstack.Stack]{s: s}, nil
			},
		},
		{
			name:        "LinearList",
			pkgName:     "linearlist",
			description: "Unsorted list with linear search and unique keys.",
			features:    []string{"Keyed", "Unique"},
			newTarget: func(capacity int) (testbench.Target, error) {
				l, err := linearlist.New(capacity)
				if err != nil {
					return nil, err
				}
				return listTarget[*linearlist.List]{l: l}, nil
			},
		},
		{
			name:        "LinearListDuplicates",
			pkgName:     "linearlist",
			description: "Unsorted list that accepts repeated keys.",
			features:    []string{"Keyed"},
			newTarget: func(capacity int) (testbench.Target, error) {
				l, err := linearlist.New(capacity)
				if err != nil {
					return nil, err
				}
				return listTarget[*linearlist.List]{l: l, repeated: true}, nil
			},
		},
		{
			name:        "SortedLinearList",
			pkgName:     "linearlist",
			description: "Ascending list with binary search and shifting insert/remove.",
			features:    []string{"Keyed", "Unique", "Sorted"},
			newTarget: func(capacity int) (testbench.Target, error) {
				l, err := linearlist.New(capacity)
				if err != nil {
					return nil, err
				}
				return sortedTarget[*linearlist.List]{l: l}, nil
			},
		},
	}
}
