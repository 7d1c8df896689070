// Package container provides dependency injection for the tally-pipeline
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"github.com/mc2tc/tallyNative-sub002/internal/config"
	"github.com/mc2tc/tallyNative-sub002/internal/loader"
	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/partition"
	"github.com/mc2tc/tallyNative-sub002/internal/report"
	"github.com/mc2tc/tallyNative-sub002/internal/snapshot"
	"github.com/mc2tc/tallyNative-sub002/internal/stage"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation: all fields are private and
// can only be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	classifier  *stage.Classifier
	partitioner *partition.Partitioner
	builder     *snapshot.Builder
	loader      *loader.Loader
	generator   *report.Generator
}

// NewContainer creates and wires all application dependencies. This is the
// main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	classifier := stage.NewClassifier(logger)
	partitioner := partition.NewPartitioner(classifier)
	builder := snapshot.NewBuilder(partitioner, cfg.Pipeline.PreviewSize)

	if cfg.Output.Delimiter != "" {
		report.SetDelimiter([]rune(cfg.Output.Delimiter)[0])
	}

	logger.Debug("Container initialized",
		logging.Field{Key: "preview_size", Value: cfg.Pipeline.PreviewSize},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Output.Format})

	return &Container{
		logger:      logger,
		config:      cfg,
		classifier:  classifier,
		partitioner: partitioner,
		builder:     builder,
		loader:      loader.NewLoader(logger),
		generator:   report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetClassifier returns the container's stage classifier.
func (c *Container) GetClassifier() *stage.Classifier {
	return c.classifier
}

// GetPartitioner returns the container's collection partitioner.
func (c *Container) GetPartitioner() *partition.Partitioner {
	return c.partitioner
}

// GetBuilder returns the container's snapshot builder.
func (c *Container) GetBuilder() *snapshot.Builder {
	return c.builder
}

// GetLoader returns the container's record loader.
func (c *Container) GetLoader() *loader.Loader {
	return c.loader
}

// GetGenerator returns the container's report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}
