package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/internal/quality"
	"github.com/wonny/sensordat/internal/sensor"
)

// ═══════════════════════════════════════════════════════════
// Report rendering
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const (
	doubleRule = "============================================================"
	singleRule = "=================================================="
	timeLayout = "2006-01-02 15:04:05.000000"
)

// Formatter renders tables and quality reports as text
type Formatter struct {
	w   io.Writer
	loc *time.Location
}

// New creates a Formatter writing to w, timestamps shown in local time
func New(w io.Writer) *Formatter {
	return &Formatter{w: w, loc: time.Local}
}

// WithLocation returns a copy that renders timestamps in loc
func (f *Formatter) WithLocation(loc *time.Location) *Formatter {
	return &Formatter{w: f.w, loc: loc}
}

func (f *Formatter) printf(format string, args ...interface{}) {
	fmt.Fprintf(f.w, format, args...)
}

func (f *Formatter) println(args ...interface{}) {
	fmt.Fprintln(f.w, args...)
}

// Header prints a titled double rule
func (f *Formatter) Header(title string) {
	f.printf("\n%s\n%s\n", title, doubleRule)
}

// Rule prints a double rule
func (f *Formatter) Rule() {
	f.println(doubleRule)
}

// Failure prints a per-sensor load failure
func (f *Formatter) Failure(label string, err error) {
	f.printf("❌ Failed to load %s: %v\n", label, err)
}

// Summary prints the shape of every sensor, or "Not available"
func (f *Formatter) Summary(root string, results []contracts.SensorResult) {
	f.printf("\n📁 READING FROM: %s\n%s\n", root, doubleRule)
	for _, r := range results {
		if r.OK() {
			f.printf("✅ Loaded %s: %s\n", r.Sensor.Label(), r.Table.ShapeString())
		} else {
			f.Failure(r.Sensor.Label(), r.Err)
		}
	}

	f.Header("📊 DATA SUMMARY:")
	for _, r := range results {
		if r.OK() {
			f.printf("%-8s: %s\n", r.Sensor.Label(), r.Table.ShapeString())
		} else {
			f.printf("%-8s: Not available\n", r.Sensor.Label())
		}
	}
	f.Rule()
}

// Info prints shape, samples, timestamp range and statistics for one sensor
func (f *Formatter) Info(r contracts.SensorResult, previewRows int) {
	f.printf("\n📊 %s DATA INFO:\n%s\n", r.Sensor.Label(), singleRule)
	if !r.OK() {
		f.printf("❌ Error reading %s data: %v\n", r.Sensor, r.Err)
		return
	}

	t := r.Table
	f.printf("Shape: %s\n", t.ShapeString())
	f.println("Data type: float64")
	f.printf("Total samples: %d\n", t.Rows)
	f.printf("Number of channels: %d\n", t.Columns)
	if t.Discarded > 0 {
		f.printf("⚠️  Discarded trailing values: %d\n", t.Discarded)
	}

	f.printf("\nFirst %d samples:\n", previewRows)
	for i := 0; i < min(previewRows, t.Rows); i++ {
		f.sampleLine(t, i)
	}

	f.printf("\nLast %d samples:\n", previewRows)
	for i := max(0, t.Rows-previewRows); i < t.Rows; i++ {
		f.sampleLine(t, i)
	}

	if t.Columns > 1 && t.Rows > 0 {
		start := t.Timestamp(0)
		end := t.Timestamp(t.Rows - 1)
		duration := end - start

		f.println("\nTimestamp Range:")
		f.printf("  Start: %.3f (%s)\n", start, f.datetime(start))
		f.printf("  End: %.3f (%s)\n", end, f.datetime(end))
		f.printf("  Duration: %.3f seconds (%.2f minutes)\n", duration, duration/60)
	}

	if t.Rows == 0 {
		return
	}

	if r.Sensor.IsSingleValue() {
		s := quality.ColumnStats(t.Column(0))
		f.println("\nValue Statistics:")
		f.printf("  Min: %.2f\n", s.Min)
		f.printf("  Max: %.2f\n", s.Max)
		f.printf("  Mean: %.2f\n", s.Mean)
		f.printf("  Std: %.2f\n", s.Std)
		return
	}

	f.println("\nChannel Statistics:")
	for i, s := range quality.ChannelStats(t) {
		f.printf("  Channel %d: Min=%.2f, Max=%.2f, Mean=%.2f\n", i+1, s.Min, s.Max, s.Mean)
	}
}

func (f *Formatter) sampleLine(t *contracts.SampleTable, i int) {
	if t.Sensor.IsSingleValue() {
		f.printf("  Sample %d: Value=%.2f, Timestamp=%.3f\n", i, t.At(i, 0), t.Timestamp(i))
		return
	}
	f.printf("  Sample %d: Channels=%s, Timestamp=%.3f\n", i, formatChannels(t.Channels(i)), t.Timestamp(i))
}

// Overview prints per-sensor sample counts, channel ranges and time range
func (f *Formatter) Overview(results []contracts.SensorResult) {
	f.Header("📊 SENSOR DATA OVERVIEW:")
	for _, r := range results {
		if !r.OK() {
			continue
		}
		t := r.Table

		f.printf("\n🔹 %s:\n", r.Sensor.Label())
		f.printf("   Shape: %s\n", t.ShapeString())
		f.printf("   Total samples: %s\n", thousands(t.Rows))
		if t.Rows == 0 {
			continue
		}

		if r.Sensor.IsSingleValue() {
			s := quality.ColumnStats(t.Column(0))
			f.printf("   Value range: %.1f → %.1f\n", s.Min, s.Max)
			f.printf("   Time range: %.0f → %.0f\n", t.Timestamp(0), t.Timestamp(t.Rows-1))
			continue
		}

		f.printf("   Channels: %d\n", t.Columns-1)
		f.printf("   Time range: %.0f → %.0f\n", t.Timestamp(0), t.Timestamp(t.Rows-1))
		for i, s := range quality.ChannelStats(t) {
			f.printf("   Channel %d: %.0f → %.0f\n", i+1, s.Min, s.Max)
		}
	}
}

// Preview prints the first n samples of every decoded sensor
func (f *Formatter) Preview(results []contracts.SensorResult, n int) {
	f.Header("🎨 SAMPLE DATA PREVIEW:")
	for _, r := range results {
		if !r.OK() || r.Table.Rows == 0 {
			continue
		}
		t := r.Table

		f.printf("\n📈 %s - First %d samples:\n", r.Sensor.Label(), n)
		for i := 0; i < min(n, t.Rows); i++ {
			if r.Sensor.IsSingleValue() {
				f.printf("   Sample %d: %6.1f | Time: %.0f\n", i+1, t.At(i, 0), t.Timestamp(i))
				continue
			}
			cells := make([]string, 0, t.Columns-1)
			for _, v := range t.Channels(i) {
				cells = append(cells, fmt.Sprintf("%8.0f", v))
			}
			f.printf("   Sample %d: [%s] | Time: %.0f\n", i+1, strings.Join(cells, " | "), t.Timestamp(i))
		}
	}
}

// Quality prints NaN/Inf findings, monotonicity and average interval
func (f *Formatter) Quality(results []contracts.SensorResult) {
	f.Header("📋 DATA QUALITY CHECK:")
	for _, r := range results {
		if !r.OK() {
			f.printf("\n🔍 %s:\n   ❌ %v\n", r.Sensor.Label(), r.Err)
			continue
		}
		f.qualityBlock(r.Sensor, r.Report)
	}
}

func (f *Formatter) qualityBlock(s sensor.Sensor, q *contracts.QualityReport) {
	f.printf("\n🔍 %s:\n", s.Label())
	if q == nil {
		f.println("   ⚠️  Quality report not computed")
		return
	}

	if q.NaNCount > 0 {
		f.printf("   ⚠️  Found %d NaN values\n", q.NaNCount)
	} else {
		f.println("   ✅ No NaN values")
	}

	if q.InfCount > 0 {
		f.printf("   ⚠️  Found %d infinite values\n", q.InfCount)
	} else {
		f.println("   ✅ No infinite values")
	}

	if !q.MonotonicChecked {
		return
	}
	if q.IsMonotonic {
		f.println("   ✅ Timestamps are monotonic")
	} else {
		f.println("   ⚠️  Non-monotonic timestamps detected")
	}

	if interval, ok := q.MeanInterval(); ok {
		f.printf("   📊 Average time interval: %.2f seconds\n", interval)
	} else {
		f.println("   📊 Average time interval: n/a (fewer than 2 samples)")
	}
}

// Comparison prints decoded shapes against the pipeline-reported shapes
func (f *Formatter) Comparison(results []contracts.SensorResult, manifest contracts.Manifest) {
	f.Header("🔍 COMPARISON WITH ORIGINAL DATA:")
	for _, r := range results {
		f.printf("\n%s:\n", r.Sensor.Label())
		if !r.OK() {
			f.printf("  ❌ Error: %v\n", r.Err)
			continue
		}

		f.printf("  .dat file shape: %s\n", r.Table.ShapeString())

		saved := manifest[r.Sensor]
		if saved == nil {
			f.println("  Original data: Not available")
			continue
		}

		f.printf("  Original shape: %s\n", saved.ShapeString())
		if ShapesMatch(r.Table, saved) {
			f.println("  ✅ Shapes match!")
		} else {
			f.println("  ❌ Shapes don't match!")
		}
	}
}

// ShapesMatch compares a decoded table with a pipeline-reported shape
func ShapesMatch(t *contracts.SampleTable, saved *contracts.SavedFile) bool {
	return saved != nil && t.Rows == saved.Shape[0] && t.Columns == saved.Shape[1]
}

// SavedFiles prints the pipeline result table and the success count
func (f *Formatter) SavedFiles(manifest contracts.Manifest) int {
	f.Header("💾 SAVED FILES:")
	success := 0
	for _, s := range sensor.All() {
		saved, ok := manifest[s]
		if !ok || saved == nil {
			f.printf("%-8s: Failed to save\n", s.Label())
			continue
		}
		f.printf("%-8s: %s\n", s.Label(), saved.Filepath)
		f.printf("%-8s  Shape: %s, Start time: %s\n", "", saved.ShapeString(), formatFloat(saved.StartTime))
		success++
	}
	f.Rule()
	f.printf("✅ Successfully processed %d/%d sensors\n", success, len(sensor.All()))
	return success
}

func (f *Formatter) datetime(ts float64) string {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return "n/a"
	}
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*1e9)).In(f.loc).Format(timeLayout)
}

func formatChannels(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// thousands formats n with comma separators (1,234,567)
func thousands(n int) string {
	if n < 0 {
		return "-" + thousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
