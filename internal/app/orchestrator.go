// Package app wires the processing pipeline: survey file text is grouped
// into sections, parsed, validated against the Manning's table, partitioned
// by river, and written out as one CSV file per river.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/quantmind-br/sections-go/internal/builder"
	"github.com/quantmind-br/sections-go/internal/config"
	"github.com/quantmind-br/sections-go/internal/domain"
	"github.com/quantmind-br/sections-go/internal/manning"
	"github.com/quantmind-br/sections-go/internal/output"
	"github.com/quantmind-br/sections-go/internal/parser"
	"github.com/quantmind-br/sections-go/internal/rivers"
	"github.com/quantmind-br/sections-go/internal/utils"
)

// Orchestrator coordinates the survey-to-CSV processing pipeline
type Orchestrator struct {
	config   *config.Config
	table    *manning.Table
	logger   *utils.Logger
	progress bool
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config   *config.Config
	Verbose  bool
	Progress bool
}

// Summary maps river short names to a human-readable section count.
type Summary map[string]string

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})

	table, err := manning.Load(utils.ExpandPath(cfg.Mannings.File))
	if err != nil {
		return nil, fmt.Errorf("loading mannings table: %w", err)
	}

	return &Orchestrator{
		config:   cfg,
		table:    table,
		logger:   logger,
		progress: opts.Progress,
	}, nil
}

// Run processes the survey data file and writes one CSV file per river.
// No output files are written unless the whole run succeeds.
func (o *Orchestrator) Run(dataPath, riverNamesPath string) (Summary, error) {
	startTime := time.Now()

	o.logger.Info().
		Str("data", dataPath).
		Str("river_names", riverNamesPath).
		Str("output", o.config.Output.Directory).
		Msg("Starting section processing")

	sections, err := o.loadSections(dataPath)
	if err != nil {
		return nil, err
	}

	mapping, err := rivers.LoadNameMapping(riverNamesPath)
	if err != nil {
		return nil, err
	}

	groups := rivers.Group(sections)

	// Render every river before any file is created, so a missing name
	// mapping aborts the run with no partial output on disk.
	renderer := output.NewRenderer(mapping, o.table)
	rendered := make(map[int][]string, groups.Len())
	for _, number := range groups.Numbers() {
		rows, err := renderer.RiverRows(number, groups.Sections(number))
		if err != nil {
			return nil, err
		}
		rendered[number] = rows
	}

	writer := output.NewWriter(output.WriterOptions{
		BaseDir: o.config.Output.Directory,
		DryRun:  o.config.Output.DryRun,
	})
	if err := writer.EnsureBaseDir(); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	summary := make(Summary, groups.Len())
	for _, number := range groups.Numbers() {
		shortName := mapping[number]
		if err := writer.WriteRiver(shortName, rendered[number]); err != nil {
			return nil, err
		}
		summary[shortName] = fmt.Sprintf("%d sections", len(groups.Sections(number)))
	}

	o.logger.Info().
		Int("sections", len(sections)).
		Int("rivers", groups.Len()).
		Dur("elapsed", time.Since(startTime)).
		Msg("Processing complete")

	return summary, nil
}

// loadSections reads, groups, parses, and validates the survey data file.
func (o *Orchestrator) loadSections(path string) ([]*domain.Section, error) {
	log := o.logger.WithFile(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	text, err := parser.DecodeText(content)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	groups := parser.GroupLines(string(text))
	if len(groups) == 0 {
		// Zero groups is a valid degenerate run: no sections, no output.
		log.Warn().Msg(domain.ErrEmptyInput.Error())
		return nil, nil
	}
	log.Debug().Int("groups", len(groups)).Msg("Grouped input lines")

	raws, err := parser.ParseGroups(groups)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	var bar interface{ Add(int) error }
	if o.progress {
		bar = utils.NewProgressBar(len(raws), utils.DescBuilding)
	}

	sections := make([]*domain.Section, 0, len(raws))
	for _, raw := range raws {
		section, err := builder.Build(raw, o.table)
		if err != nil {
			o.logSectionFailure(log, raw, err)
			return nil, fmt.Errorf("parsing section in %s failed: %w", path, err)
		}
		sections = append(sections, section)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return sections, nil
}

// logSectionFailure reports which section could not be built, including its
// raw metadata for diagnosis.
func (o *Orchestrator) logSectionFailure(log *utils.Logger, raw *domain.RawSection, err error) {
	metadata, marshalErr := json.Marshal(raw.Metadata)
	if marshalErr != nil {
		metadata = []byte("{}")
	}
	log.Error().
		Err(err).
		RawJSON("metadata", metadata).
		Msg("Couldn't parse section")
}
