package storage

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/dorm-area/internal/comparison"
)

//go:embed default_reference.yaml
var defaultReferenceYAML []byte

// Dataset is the content of a reference file: the reference area table and, optionally,
// the name mapping used to fold its lines onto computed spaces.
type Dataset struct {
	Items   []comparison.Item  `yaml:"items"`
	Mapping comparison.Mapping `yaml:"mapping"`
}

var defaultDataset = mustParseDataset(defaultReferenceYAML)

// DefaultDataset returns a copy of the built-in reference dataset.
func DefaultDataset() Dataset {
	return Dataset{
		Items:   cloneItems(defaultDataset.Items),
		Mapping: defaultDataset.Mapping.Clone(),
	}
}

// DefaultReference returns a copy of the built-in reference items.
func DefaultReference() []comparison.Item {
	return cloneItems(defaultDataset.Items)
}

// LoadDataset reads a reference dataset from a YAML file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading reference file: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes and validates a YAML reference dataset. A dataset without a
// mapping section uses comparison.DefaultMapping.
func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parsing reference YAML: %w", err)
	}

	items, err := normalizeItems(ds.Items)
	if err != nil {
		return Dataset{}, err
	}
	ds.Items = items

	if ds.Mapping == nil {
		ds.Mapping = comparison.DefaultMapping.Clone()
	}
	return ds, nil
}

func mustParseDataset(data []byte) Dataset {
	ds, err := ParseDataset(data)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in reference dataset: %v", err))
	}
	return ds
}
