package tables

import (
	"sort"
	"sync"

	"github.com/tsawler/tabgrid/model"
)

// ColumnDetector infers column anchors from a segment's rows.
type ColumnDetector interface {
	// Detect returns strictly ascending anchors, or nil when no column
	// structure can be inferred
	Detect(rows []model.Row, config Config) []model.ColumnAnchor

	// Name returns the strategy name
	Name() string
}

// HeaderClassifier picks the header row of a mapped segment.
type HeaderClassifier interface {
	// HeaderIndex returns the index of the header row in mapped
	HeaderIndex(mapped [][]string, config Config) int

	// Name returns the strategy name
	Name() string
}

// StrategyRegistry holds registered strategies
type StrategyRegistry struct {
	mu          sync.RWMutex
	columns     map[string]ColumnDetector
	classifiers map[string]HeaderClassifier
}

// NewRegistry creates a new strategy registry
func NewRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		columns:     make(map[string]ColumnDetector),
		classifiers: make(map[string]HeaderClassifier),
	}
}

// RegisterColumnDetector registers a column detector
func (r *StrategyRegistry) RegisterColumnDetector(d ColumnDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.columns[d.Name()] = d
}

// RegisterHeaderClassifier registers a header classifier
func (r *StrategyRegistry) RegisterHeaderClassifier(c HeaderClassifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classifiers[c.Name()] = c
}

// ColumnDetector retrieves a column detector by name
func (r *StrategyRegistry) ColumnDetector(name string) ColumnDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.columns[name]
}

// HeaderClassifier retrieves a header classifier by name
func (r *StrategyRegistry) HeaderClassifier(name string) HeaderClassifier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classifiers[name]
}

// List returns the sorted names of all registered column detectors and
// header classifiers.
func (r *StrategyRegistry) List() (columns, classifiers []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.columns {
		columns = append(columns, name)
	}
	for name := range r.classifiers {
		classifiers = append(classifiers, name)
	}
	sort.Strings(columns)
	sort.Strings(classifiers)
	return columns, classifiers
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterColumnDetector registers a column detector globally
func RegisterColumnDetector(d ColumnDetector) {
	globalRegistry.RegisterColumnDetector(d)
}

// RegisterHeaderClassifier registers a header classifier globally
func RegisterHeaderClassifier(c HeaderClassifier) {
	globalRegistry.RegisterHeaderClassifier(c)
}

// GetColumnDetector retrieves a column detector by name
func GetColumnDetector(name string) ColumnDetector {
	return globalRegistry.ColumnDetector(name)
}

// GetHeaderClassifier retrieves a header classifier by name
func GetHeaderClassifier(name string) HeaderClassifier {
	return globalRegistry.HeaderClassifier(name)
}

// ListStrategies returns all registered strategy names
func ListStrategies() (columns, classifiers []string) {
	return globalRegistry.List()
}

func init() {
	// Register default strategies
	RegisterColumnDetector(MedianDetector{})
	RegisterColumnDetector(GapClusterDetector{})
	RegisterColumnDetector(AutoDetector{})
	RegisterHeaderClassifier(RatioClassifier{})
	RegisterHeaderClassifier(FirstNonNumericClassifier{})
}
