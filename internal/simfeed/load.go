package simfeed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"algotest/pkg/logging"
	"algotest/pkg/market"
)

type barRecord struct {
	Time   time.Time `yaml:"time"`
	Open   float64   `yaml:"open"`
	High   float64   `yaml:"high"`
	Low    float64   `yaml:"low"`
	Close  float64   `yaml:"close"`
	Volume float64   `yaml:"volume"`
}

type dataFile struct {
	Instrument string      `yaml:"instrument"`
	Period     string      `yaml:"period"`
	Bars       []barRecord `yaml:"bars"`
}

// FromFile loads a bar file and returns a feed positioned at its last
// bar. The file describes its own instrument and period; missing fields
// fall back to EURUSD m5. Bar timestamps must be strictly ascending.
func FromFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bar data from %s: %w", path, err)
	}

	var df dataFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse bar data from %s: %w", path, err)
	}
	if len(df.Bars) == 0 {
		return nil, fmt.Errorf("bar data %s contains no bars", path)
	}

	instrument := df.Instrument
	if instrument == "" {
		instrument = "EURUSD"
	}
	period := market.PeriodM5
	if df.Period != "" {
		p, ok := market.ParsePeriod(df.Period)
		if !ok {
			return nil, fmt.Errorf("bar data %s names unknown period %q", path, df.Period)
		}
		period = p
	}

	times := make([]time.Time, len(df.Bars))
	series := map[string][]float64{
		"open":   make([]float64, len(df.Bars)),
		"high":   make([]float64, len(df.Bars)),
		"low":    make([]float64, len(df.Bars)),
		"close":  make([]float64, len(df.Bars)),
		"volume": make([]float64, len(df.Bars)),
	}
	for i, bar := range df.Bars {
		if i > 0 && !bar.Time.After(times[i-1]) {
			return nil, fmt.Errorf("bar data %s: bar %d timestamp %s is not after bar %d", path, i, bar.Time.Format(time.RFC3339), i-1)
		}
		times[i] = bar.Time
		series["open"][i] = bar.Open
		series["high"][i] = bar.High
		series["low"][i] = bar.Low
		series["close"][i] = bar.Close
		series["volume"][i] = bar.Volume
	}

	logging.Info(subsystem, "loaded %d %s bars for %s from %s", len(times), period, instrument, path)
	return newFeed(instrument, period, times, series), nil
}
