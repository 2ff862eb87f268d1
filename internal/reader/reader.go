package reader

import (
	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/internal/decoder"
	"github.com/wonny/sensordat/internal/quality"
	"github.com/wonny/sensordat/internal/sensor"
	"github.com/wonny/sensordat/pkg/logger"
)

// DatReader reads sensor .dat files from an extracted folder.
// Every call re-reads storage; nothing is cached.
type DatReader struct {
	root    string
	checker *quality.Checker
	logger  *logger.Logger
}

var _ contracts.SensorReader = (*DatReader)(nil)

// New creates a new DatReader rooted at the extracted folder
func New(root string, log *logger.Logger) *DatReader {
	if log == nil {
		log = logger.Nop()
	}
	return &DatReader{
		root:    root,
		checker: quality.NewChecker(),
		logger:  log.WithField("root", root),
	}
}

// Root returns the extracted folder
func (r *DatReader) Root() string {
	return r.root
}

// ReadSensor decodes one sensor's file.
// A trailing partial row is dropped and logged as a warning.
func (r *DatReader) ReadSensor(s sensor.Sensor) (*contracts.SampleTable, error) {
	if !s.Valid() {
		return nil, &sensor.UnknownSensorError{Name: s.String()}
	}

	path := s.Path(r.root)
	log := r.logger.WithSensor(s.String())

	table, err := decoder.ReadFile(path, s.Schema())
	if err != nil {
		return nil, err
	}

	if table.Discarded > 0 {
		log.WithFields(map[string]interface{}{
			"path":      path,
			"discarded": table.Discarded,
			"columns":   table.Columns,
		}).Warn("trailing partial row discarded")
	}

	log.Debugf("decoded %s from %s", table.ShapeString(), path)
	return table, nil
}

// ReadByName parses the identifier first; an unknown name never reaches
// the filesystem.
func (r *DatReader) ReadByName(name string) (*contracts.SampleTable, error) {
	s, err := sensor.Parse(name)
	if err != nil {
		return nil, err
	}
	return r.ReadSensor(s)
}

// Inspect reads one sensor and runs the quality checks on it
func (r *DatReader) Inspect(s sensor.Sensor) contracts.SensorResult {
	result := contracts.SensorResult{Sensor: s}

	table, err := r.ReadSensor(s)
	if err != nil {
		r.logger.WithSensor(s.String()).WithError(err).Warn("sensor not available")
		result.Err = err
		return result
	}

	result.Table = table
	result.Report = r.checker.Check(table)
	return result
}

// ReadAll inspects every sensor. A failure in one sensor is recorded in
// its result and never stops the others.
// ⭐ 부분 성공은 정상 결과 (N/5)
func (r *DatReader) ReadAll() []contracts.SensorResult {
	return r.InspectMany(sensor.All())
}

// InspectMany inspects the given sensors in order
func (r *DatReader) InspectMany(sensors []sensor.Sensor) []contracts.SensorResult {
	results := make([]contracts.SensorResult, 0, len(sensors))
	for _, s := range sensors {
		results = append(results, r.Inspect(s))
	}

	r.logger.Infof("loaded %d/%d sensors", contracts.CountOK(results), len(results))
	return results
}
