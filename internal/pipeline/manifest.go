package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/internal/sensor"
)

type savedFileYAML struct {
	Filepath  string  `yaml:"filepath"`
	Shape     []int   `yaml:"shape"`
	StartTime float64 `yaml:"start_time"`
}

// LoadManifest reads a run_complete_workflow result file (YAML or JSON)
func LoadManifest(path string) (contracts.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a sensor → saved file mapping. A null entry means
// the pipeline failed to save that sensor.
// KnownFields(true): 오타/미사용 필드 즉시 실패
func ParseManifest(data []byte) (contracts.Manifest, error) {
	raw := map[string]*savedFileYAML{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	manifest := make(contracts.Manifest, len(raw))
	for name, entry := range raw {
		s, err := sensor.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}

		if entry == nil {
			manifest[s] = nil
			continue
		}

		if len(entry.Shape) != 2 {
			return nil, fmt.Errorf("parse manifest: %s shape must have 2 dimensions, got %d", s, len(entry.Shape))
		}

		manifest[s] = &contracts.SavedFile{
			Filepath:  entry.Filepath,
			Shape:     [2]int{entry.Shape[0], entry.Shape[1]},
			StartTime: entry.StartTime,
		}
	}

	return manifest, nil
}
