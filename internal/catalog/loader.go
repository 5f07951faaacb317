package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedFormat is the catalog file format major version this build reads.
const SupportedFormat = "v1"

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://aiaware-catalog.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// fileDoc mirrors the on-disk YAML layout.
type fileDoc struct {
	Format  string       `yaml:"format"`
	Locale  string       `yaml:"locale"`
	Title   string       `yaml:"title"`
	Modules []fileModule `yaml:"modules"`
}

type fileModule struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Summary string      `yaml:"summary"`
	Badge   string      `yaml:"badge"`
	Levels  []fileLevel `yaml:"levels"`
}

type fileLevel struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title"`
	Body     string        `yaml:"body"`
	Quiz     *fileQuiz     `yaml:"quiz"`
	Activity *fileActivity `yaml:"activity"`
	Scenario *fileScenario `yaml:"scenario"`
}

type fileQuiz struct {
	Question    string `yaml:"question"`
	Explanation string `yaml:"explanation"`
	Options     []struct {
		Text    string `yaml:"text"`
		Correct bool   `yaml:"correct"`
	} `yaml:"options"`
}

type fileActivity struct {
	Type         string         `yaml:"type"`
	Instructions string         `yaml:"instructions"`
	Data         map[string]any `yaml:"data"`
}

type fileScenario struct {
	Prompt     string   `yaml:"prompt"`
	Highlights []string `yaml:"highlights"`
	Resolution string   `yaml:"resolution"`
	Takeaway   string   `yaml:"takeaway"`
}

// Load reads a catalog from a YAML file, or from every .yaml/.yml file in a
// directory (modules concatenated in file-name order).
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog dir: %w", err)
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
				continue
			}
			files = append(files, filepath.Join(path, name))
		}
		sort.Strings(files)
		if len(files) == 0 {
			return nil, fmt.Errorf("no catalog files in %s", path)
		}
	} else {
		files = []string{path}
	}

	var modules []Module
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		ms, err := parseModules(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
		modules = append(modules, ms...)
	}
	return New(modules)
}

// Parse builds a catalog from a single YAML document.
func Parse(data []byte) (*Catalog, error) {
	modules, err := parseModules(data)
	if err != nil {
		return nil, err
	}
	return New(modules)
}

// parseModules validates a YAML document against the catalog schema and
// converts it to modules. Structural checks are left to New.
func parseModules(data []byte) ([]Module, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if !semver.IsValid(doc.Format) {
		return nil, fmt.Errorf("invalid catalog format version %q", doc.Format)
	}
	if semver.Major(doc.Format) != SupportedFormat {
		return nil, fmt.Errorf("unsupported catalog format %s (this build reads %s.x.y)", doc.Format, SupportedFormat)
	}

	modules := make([]Module, len(doc.Modules))
	for i, fm := range doc.Modules {
		modules[i] = fm.toModule()
	}
	return modules, nil
}

// validateDocument checks a decoded YAML value against the embedded schema.
func validateDocument(raw any) error {
	schema, err := catalogSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so numbers and maps have the shapes the
	// schema validator expects.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

func (fm fileModule) toModule() Module {
	m := Module{
		ID:      fm.ID,
		Title:   fm.Title,
		Summary: strings.TrimSpace(fm.Summary),
		BadgeID: fm.Badge,
		Levels:  make([]Level, len(fm.Levels)),
	}
	for i, fl := range fm.Levels {
		m.Levels[i] = fl.toLevel()
	}
	return m
}

func (fl fileLevel) toLevel() Level {
	l := Level{
		ID:    fl.ID,
		Title: fl.Title,
		Body:  strings.TrimSpace(fl.Body),
	}
	switch {
	case fl.Quiz != nil:
		q := &Quiz{
			Question:    fl.Quiz.Question,
			Explanation: strings.TrimSpace(fl.Quiz.Explanation),
			Options:     make([]Option, len(fl.Quiz.Options)),
		}
		for i, o := range fl.Quiz.Options {
			q.Options[i] = Option{Text: o.Text, Correct: o.Correct}
		}
		l.Payload = q
	case fl.Activity != nil:
		l.Payload = &Activity{
			Type:         fl.Activity.Type,
			Instructions: strings.TrimSpace(fl.Activity.Instructions),
			Data:         fl.Activity.Data,
		}
	case fl.Scenario != nil:
		l.Payload = &Scenario{
			Prompt:     strings.TrimSpace(fl.Scenario.Prompt),
			Highlights: fl.Scenario.Highlights,
			Resolution: strings.TrimSpace(fl.Scenario.Resolution),
			Takeaway:   strings.TrimSpace(fl.Scenario.Takeaway),
		}
	}
	return l
}
