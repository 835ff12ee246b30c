package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/daysin/internal/types"
)

// Engine evaluates queries read from batch files or sources.
type Engine struct {
	mu           sync.RWMutex
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]Operation
	// parseSeverity applies to lines that are not valid queries.
	parseSeverity tt.Severity

	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	isWatching bool
	done       chan struct{}
	onResults  func(filename string, results []tt.Result)
}

// NewEngine creates a new engine with every operation registered and
// the given per-operation overrides applied.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{logger: zap.NewNop()}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}

	return engine, nil
}

// Define the opConstructor type
type opConstructor func() Operation

// Define the opMap type
type opMap map[string]opConstructor

// Create a map to hold the mappings of operation names to their constructors
var allOpConstructors = opMap{
	"leap":       NewLeapYearOp,
	"days":       NewDaysInMonthOp,
	"year":       NewDaysInYearOp,
	"palindrome": NewPalindromeOp,
	"reverse":    NewReverseOp,
	"digits":     NewDigitCountOp,
	"digitsum":   NewDigitSumOp,
	"words":      NewWordsOp,
	"min":        NewMinimumOp,
}

// OperationNames lists every known operation keyword in sorted order.
func OperationNames() []string {
	names := make([]string, 0, len(allOpConstructors))
	for name := range allOpConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]Operation)
	e.registerDefaultRules()
	e.parseSeverity = tt.SeverityError

	for key, rule := range rules {
		if key == ParseRule {
			if rule.Severity == tt.SeverityOff {
				e.IgnoreRule(key)
			}
			e.parseSeverity = rule.Severity
			continue
		}
		op := e.findRule(key)
		if op == nil {
			return fmt.Errorf("unknown operation %q in configuration", key)
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		op.SetSeverity(rule.Severity)
	}
	return nil
}

func (e *Engine) registerDefaultRules() {
	for key, newOp := range allOpConstructors {
		e.rules[key] = newOp()
	}
}

func (e *Engine) findRule(name string) Operation {
	if op, ok := e.rules[name]; ok {
		return op
	}
	return nil
}

// SetLogger replaces the engine logger. A nil logger silences output.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
}

// Run evaluates every query in the given file.
func (e *Engine) Run(filename string) ([]tt.Result, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return e.evaluate(filename, content), nil
}

// RunSource evaluates every query in source.
func (e *Engine) RunSource(source []byte) ([]tt.Result, error) {
	return e.evaluate("", source), nil
}

// Evaluate runs a single query.
// The returned error wraps tt.ErrInvalidInput when the query is rejected.
func (e *Engine) Evaluate(q tt.Query) (tt.Result, error) {
	op := e.findRule(q.Op)
	if op == nil {
		return tt.Result{}, fmt.Errorf("%w: unknown operation %q", tt.ErrInvalidInput, q.Op)
	}
	if err := checkArity(op, q.Args); err != nil {
		return tt.Result{}, err
	}
	value, err := op.Eval(q.Args)
	if err != nil {
		return tt.Result{}, err
	}
	return tt.Result{
		Op:       q.Op,
		Input:    q.Raw,
		Value:    value,
		Filename: q.Filename,
		Line:     q.Line,
	}, nil
}

func (e *Engine) evaluate(filename string, source []byte) []tt.Result {
	var results []tt.Result
	for _, q := range parseQueries(filename, source) {
		if e.isIgnoredRule(q.Op) || q.isNolint() {
			continue
		}
		err := q.parseErr
		res := tt.Result{}
		if err == nil {
			res, err = e.Evaluate(q.Query)
		}
		if err != nil {
			res = tt.Result{
				Op:       q.Op,
				Input:    q.Raw,
				Message:  err.Error(),
				Filename: q.Filename,
				Line:     q.Line,
				Severity: e.severityOf(q.Op),
			}
		}
		results = append(results, res)
	}
	return results
}

func (e *Engine) severityOf(op string) tt.Severity {
	if op == ParseRule {
		return e.parseSeverity
	}
	if r := e.findRule(op); r != nil {
		return r.Severity()
	}
	return tt.SeverityError
}

func (e *Engine) IgnoreRule(rule string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

func (e *Engine) IgnorePath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredRule(rule string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ignoredRules[rule]
}

func (e *Engine) isIgnoredPath(path string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	path = filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if path == ignored || strings.HasPrefix(path, ignored+string(filepath.Separator)) {
			return true
		}
		if ok, _ := filepath.Match(ignored, path); ok {
			return true
		}
	}
	return false
}

// SourceCode stores the content of a batch file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}

// Severities reports the effective severity of every registered operation
// and of the parse rule.
func (e *Engine) Severities() map[string]tt.Severity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]tt.Severity, len(e.rules)+1)
	for name, op := range e.rules {
		out[name] = op.Severity()
	}
	out[ParseRule] = e.parseSeverity
	return out
}
