// Package sources describes the telemetry tools whose output is processed:
// which files belong to which signal and how each signal is reduced.
package sources

import (
	"fmt"
	"path"

	"power-analytics/internal/correlators"
	"power-analytics/internal/models"
)

const (
	NvmlPower  = "nvml_power"
	NvmlEnergy = "nvml_energy"
	Variorum   = "variorum"
)

type SignalKind string

const (
	KindWindow       SignalKind = "window"        // mean per time window
	KindDeviceWindow SignalKind = "device_window" // mean per time window and device
	KindProjection   SignalKind = "projection"    // ns -> ms conversion and column selection
	KindConcat       SignalKind = "concat"
	KindStats        SignalKind = "stats"
)

type Signal struct {
	Name    string
	Pattern string
	Kind    SignalKind
	// TimeColumn is the preferred time field of window signals.
	TimeColumn string
	KeyColumn  string
	// NanosecondColumns are converted to "<name>_ms" columns by projections.
	NanosecondColumns []string
	// Columns is the projection output, in order.
	Columns []string
	Output  string
}

type Correlation struct {
	SamplePattern   string
	RegionPattern   string
	ValueColumn     string
	ValueDomain     string
	ValueUnit       string
	ValueHeader     string
	TimestampFields []correlators.TimestampField
	// RegionsOptional skips the step quietly when no region file exists.
	RegionsOptional bool
	CorrelationFile string
	Table           string
}

func (c *Correlation) SeriesFile() string { return c.Table + ".csv" }

func (c *Correlation) SchemaFile() string { return c.Table + ".sql" }

func (c *Correlation) ValueStrategies() []correlators.ColumnStrategy {
	return correlators.ValueStrategies(c.ValueColumn, c.ValueDomain, c.ValueUnit)
}

type Source struct {
	Name        string
	InputDir    string
	OutputDir   string
	Window      models.WindowSize
	Signals     []Signal
	Correlation *Correlation
}

// OutputKey places a file in the source's output directory.
func (s *Source) OutputKey(file string) string {
	return path.Join(s.OutputDir, file)
}

const (
	fieldRelativeMs = "time_relative_ms"
	fieldEpochMs    = "timestamp_system_epoch_ms"
	fieldMs         = "timestamp_ms"
)

// Catalog returns fresh definitions of every supported source using window.
func Catalog(window models.WindowSize) []Source {
	return []Source{
		{
			Name:      NvmlPower,
			InputDir:  NvmlPower,
			OutputDir: NvmlPower,
			Window:    window,
			Signals: []Signal{
				{Name: "nvml_relative", Pattern: "*-nvml-power-relative.csv", Kind: KindWindow, TimeColumn: fieldRelativeMs, Output: "nvml_relative.csv"},
				{Name: "nvml_absolute", Pattern: "*-nvml-power.csv", Kind: KindWindow, TimeColumn: fieldEpochMs, Output: "nvml_absolute.csv"},
				{Name: "nvml_stats", Pattern: "*-nvml-power.dat", Kind: KindStats, Output: "nvml_stats.csv"},
				{Name: "nvml_regions", Pattern: "*-nvml-regions.csv", Kind: KindConcat, Output: "nvml_regions.csv"},
			},
			Correlation: &Correlation{
				SamplePattern:   "*-nvml-power-relative.csv",
				RegionPattern:   "*-nvml-regions.csv",
				ValueColumn:     "power_watts",
				ValueDomain:     "power",
				ValueUnit:       "watts",
				ValueHeader:     "power_watts",
				TimestampFields: []correlators.TimestampField{correlators.RelativeMilliseconds},
				CorrelationFile: "nvml_correlation.csv",
				Table:           "nvml_series",
			},
		},
		{
			Name:      NvmlEnergy,
			InputDir:  NvmlEnergy,
			OutputDir: NvmlEnergy,
			Window:    window,
			Signals: []Signal{
				{Name: "nvml_energy_relative", Pattern: "*-nvml-energy-relative.csv", Kind: KindWindow, TimeColumn: fieldRelativeMs, Output: "nvml_energy_relative.csv"},
				{Name: "nvml_energy_absolute", Pattern: "*-nvml-energy.csv", Kind: KindWindow, TimeColumn: fieldEpochMs, Output: "nvml_energy_absolute.csv"},
				{Name: "nvml_energy_stats", Pattern: "*-nvml-energy.dat", Kind: KindStats, Output: "nvml_energy_stats.csv"},
			},
			Correlation: &Correlation{
				SamplePattern:   "*-nvml-energy.csv",
				RegionPattern:   "*-nvml-regions.csv",
				ValueColumn:     "nvml_joules_energy",
				ValueDomain:     "energy",
				ValueUnit:       "joules",
				ValueHeader:     "energy_joules",
				TimestampFields: correlators.DefaultTimestampFields(),
				RegionsOptional: true,
				CorrelationFile: "nvml_energy_correlation.csv",
				Table:           "nvml_energy_series",
			},
		},
		{
			Name:      Variorum,
			InputDir:  Variorum,
			OutputDir: Variorum,
			Window:    window,
			Signals: []Signal{
				{Name: "variorum_relative", Pattern: "*-variorum-power-relative.csv", Kind: KindWindow, TimeColumn: fieldRelativeMs, Output: "variorum_relative.csv"},
				{Name: "variorum_absolute", Pattern: "*-variorum-power.csv", Kind: KindWindow, TimeColumn: fieldEpochMs, Output: "variorum_absolute.csv"},
				{
					Name: "variorum_gpus", Pattern: "*-variorum-power-gpus.csv", Kind: KindDeviceWindow,
					TimeColumn: fieldMs, KeyColumn: "device_id",
					Columns: []string{fieldMs, "power_watts", "device_id"},
					Output:  "variorum_gpus.csv",
				},
				{
					Name: "variorum_kernels", Pattern: "*-variorum-power-kernels.csv", Kind: KindProjection,
					NanosecondColumns: []string{"start_time_ns", "end_time_ns", "duration_ns"},
					Columns:           []string{"kernel_id", "name", "type", "start_time_ms", "end_time_ms", "duration_ms"},
					Output:            "variorum_kernels.csv",
				},
				{Name: "variorum_stats", Pattern: "*-variorum-power.dat", Kind: KindStats, Output: "variorum_stats.csv"},
				{
					Name: "variorum_regions", Pattern: "*regions.csv", Kind: KindProjection,
					NanosecondColumns: []string{"start_time_ns", "end_time_ns"},
					Columns:           []string{"name", "start_time_ms", "end_time_ms"},
					Output:            "variorum_regions.csv",
				},
			},
			Correlation: &Correlation{
				SamplePattern:   "*variorum-power.csv",
				RegionPattern:   "*regions.csv",
				ValueColumn:     "variorum_power_watts",
				ValueDomain:     "power",
				ValueUnit:       "watts",
				ValueHeader:     "power_watts",
				TimestampFields: correlators.DefaultTimestampFields(),
				CorrelationFile: "correlation.csv",
				Table:           "variorum_series",
			},
		},
	}
}

// Override enables a source, optionally with its own window.
type Override struct {
	Name     string
	WindowMs float64
}

// Select returns the catalog sources named by overrides, in override order, or
// every source when there is none.
func Select(window models.WindowSize, overrides []Override) ([]Source, error) {
	catalog := Catalog(window)
	if len(overrides) == 0 {
		return catalog, nil
	}

	byName := make(map[string]Source, len(catalog))
	for _, s := range catalog {
		byName[s.Name] = s
	}
	selected := make([]Source, 0, len(overrides))
	seen := map[string]bool{}
	for _, o := range overrides {
		s, ok := byName[o.Name]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", o.Name)
		}
		if seen[o.Name] {
			return nil, fmt.Errorf("source %q listed twice", o.Name)
		}
		seen[o.Name] = true
		if o.WindowMs > 0 {
			w, err := models.NewWindowSize(o.WindowMs)
			if err != nil {
				return nil, err
			}
			s.Window = w
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// Names lists the source names in order.
func Names(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return names
}
