package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

var (
	// ErrMalformedRecord marks a catalog record with a missing required field.
	ErrMalformedRecord = errors.New("malformed catalog record")

	// ErrMissingColumn marks a CSV catalog whose header lacks a required column.
	ErrMissingColumn = errors.New("missing catalog column")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// LoadError describes a single invalid catalog record.
type LoadError struct {
	Line   int
	RuleID string
	Field  string
}

func (e *LoadError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("record %d (%s): missing %s", e.Line, e.RuleID, e.Field)
	}
	return fmt.Sprintf("record %d: missing %s", e.Line, e.Field)
}

func (e *LoadError) Unwrap() error {
	return ErrMalformedRecord
}

// LoadOption configures catalog loading.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger      *zap.Logger
	skipInvalid bool
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSkipInvalid drops malformed records with a warning instead of failing
// the whole load.
func WithSkipInvalid() LoadOption {
	return func(o *loadOptions) {
		o.skipInvalid = true
	}
}

func newLoadOptions(opts []LoadOption) *loadOptions {
	o := &loadOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadFile reads a catalog from path. The format follows the extension:
// .csv, .yaml or .yml.
func LoadFile(path string, opts ...LoadOption) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(f, opts...)
	case ".yaml", ".yml":
		return ParseYAML(f, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// builder collects validated records and applies the load options.
type builder struct {
	opts  *loadOptions
	rules []types.Rule
	seen  map[string]int
}

func newBuilder(opts []LoadOption) *builder {
	return &builder{
		opts: newLoadOptions(opts),
		seen: make(map[string]int),
	}
}

// add validates one record. line is the 1-based record number in the source.
func (b *builder) add(line int, r types.Rule) error {
	r.ID = strings.TrimSpace(r.ID)
	r.Conclusion = strings.TrimSpace(r.Conclusion)
	r.Advisory = strings.TrimSpace(r.Advisory)
	r.Conditions = cleanConditions(r.Conditions)

	if err := validate(line, r); err != nil {
		if !b.opts.skipInvalid {
			return err
		}
		b.opts.logger.Warn("Skipping invalid catalog record", zap.Error(err))
		return nil
	}

	if prev, ok := b.seen[r.ID]; ok {
		b.opts.logger.Warn("Duplicate rule id",
			zap.String("rule_id", r.ID),
			zap.Int("first_record", prev),
			zap.Int("record", line))
	} else {
		b.seen[r.ID] = line
	}

	b.rules = append(b.rules, r)
	return nil
}

func (b *builder) catalog() *Catalog {
	b.opts.logger.Debug("Catalog loaded", zap.Int("rules", len(b.rules)))
	return NewCatalog(b.rules...)
}

func validate(line int, r types.Rule) error {
	switch {
	case r.ID == "":
		return &LoadError{Line: line, Field: "rule_id"}
	case len(r.Conditions) == 0:
		return &LoadError{Line: line, RuleID: r.ID, Field: "conditions"}
	case r.Conclusion == "":
		return &LoadError{Line: line, RuleID: r.ID, Field: "conclusion"}
	}
	return nil
}

func cleanConditions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
