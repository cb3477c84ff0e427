package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/factorykit/furnaceline/pkg/blueprint"
	"github.com/factorykit/furnaceline/pkg/line"
)

// Runner executes the generation pipeline.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options, since generation is a pure function of its
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the structured blueprint.
	Document *blueprint.Document

	// Exchange is the encoded exchange string. Empty unless the encode
	// stage ran.
	Exchange string

	// Stats contains sizing and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FurnaceCount int
	EntityCount  int
	BuildTime    time.Duration
	EncodeTime   time.Duration
	EncodedBytes int
}

// Execute runs the complete build → encode pipeline.
func (r *Runner) Execute(opts Options) (*Result, error) {
	result, err := r.Generate(opts)
	if err != nil {
		return nil, err
	}

	encodeStart := time.Now()
	exchange, err := blueprint.Encode(result.Document)
	if err != nil {
		return nil, err
	}
	result.Exchange = exchange
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.Stats.EncodedBytes = len(exchange)

	r.Logger.Info("encoded blueprint",
		"bytes", result.Stats.EncodedBytes,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Generate runs the build stage only and returns the structured document.
func (r *Runner) Generate(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	buildStart := time.Now()
	doc, err := line.Build(opts.LineConfig())
	if err != nil {
		return nil, err
	}

	result := &Result{Document: doc}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.FurnaceCount = doc.Blueprint.Metadata.FurnaceCount
	result.Stats.EntityCount = len(doc.Blueprint.Entities)

	r.Logger.Info("built furnace line",
		"furnaces", result.Stats.FurnaceCount,
		"entities", result.Stats.EntityCount,
		"duration", result.Stats.BuildTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
