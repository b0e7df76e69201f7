package rules

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

type yamlCatalog struct {
	Rules []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	ID         string   `yaml:"id"`
	Conditions []string `yaml:"conditions"`
	Conclusion string   `yaml:"conclusion"`
	Advisory   string   `yaml:"advisory"`
}

// ParseYAML reads a catalog document of the form
//
//	rules:
//	  - id: R1
//	    conditions: [fever, cough]
//	    conclusion: flu
//	    advisory: rest
func ParseYAML(r io.Reader, opts ...LoadOption) (*Catalog, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	b := newBuilder(opts)
	for i, yr := range doc.Rules {
		rule := types.Rule{
			ID:         yr.ID,
			Conditions: yr.Conditions,
			Conclusion: yr.Conclusion,
			Advisory:   yr.Advisory,
		}
		if err := b.add(i+1, rule); err != nil {
			return nil, err
		}
	}
	return b.catalog(), nil
}
