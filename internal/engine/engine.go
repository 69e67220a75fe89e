// Package engine orchestrates schema ingestion, mock data synthesis, and
// artifact emission into a single generation run.
package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tableforge/tableforge/internal/catalog"
	"github.com/tableforge/tableforge/internal/dialect"
	"github.com/tableforge/tableforge/internal/emitter"
	"github.com/tableforge/tableforge/internal/fake"
	"github.com/tableforge/tableforge/internal/ingest"
	"github.com/tableforge/tableforge/internal/mock"
	"github.com/tableforge/tableforge/internal/model"
	"github.com/tableforge/tableforge/internal/openapi"
	"github.com/tableforge/tableforge/internal/sqlgen"
)

// Options configures a new Engine. The zero value selects the mysql dialect,
// a nil catalog, non-deterministic fake data, and the default logger.
type Options struct {
	Dialect string
	Catalog catalog.Catalog
	Seed    int64 // 0 means non-deterministic
	Logger  *slog.Logger
}

// Engine wires the generation pipeline together. It is safe for concurrent
// use once constructed.
type Engine struct {
	dialect  dialect.Dialect
	builder  *sqlgen.Builder
	mocks    *mock.Registry
	renderer emitter.Renderer
	catalog  catalog.Catalog
	logger   *slog.Logger
}

// New builds an Engine from the given options. An unknown dialect name is a
// configuration error.
func New(opts Options) (*Engine, error) {
	name := opts.Dialect
	if name == "" {
		name = "mysql"
	}
	d, err := dialect.DefaultRegistry().Resolve(name)
	if err != nil {
		return nil, err
	}

	var provider fake.Provider
	if opts.Seed != 0 {
		provider = fake.NewSeeded(opts.Seed)
	} else {
		provider = fake.NewRand()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		dialect:  d,
		builder:  sqlgen.NewBuilder(d),
		mocks:    mock.NewRegistry(provider),
		renderer: emitter.NewTemplateRenderer(),
		catalog:  opts.Catalog,
		logger:   logger,
	}, nil
}

// GenerateAll validates the schema, synthesizes mock rows, and produces every
// artifact in one pass. The returned report is complete; any failure aborts
// the whole run.
func (e *Engine) GenerateAll(ctx context.Context, schema model.TableSchema) (*model.GenerateReport, error) {
	if err := schema.Validate(model.ProfileFull); err != nil {
		return nil, err
	}

	rowCount := schema.RowCount()
	e.logger.Debug("generating artifacts",
		"table", schema.TableName, "fields", len(schema.Fields), "rows", rowCount)

	createSQL := e.builder.CreateTable(schema)
	rows, err := mock.BuildRows(schema, e.mocks, rowCount)
	if err != nil {
		return nil, err
	}

	report := &model.GenerateReport{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Schema:    schema,
		CreateSQL: createSQL,
		Rows:      rows,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.InsertSQL = e.builder.Inserts(schema, rows)
		return nil
	})
	g.Go(func() error {
		var err error
		report.DataJSON, err = emitter.BuildJSON(rows)
		return err
	})
	g.Go(func() error {
		var err error
		report.JavaEntity, err = emitter.JavaEntity(e.renderer, schema)
		return err
	})
	g.Go(func() error {
		var err error
		report.JavaObject, err = emitter.JavaObject(e.renderer, schema, rows)
		return err
	})
	g.Go(func() error {
		var err error
		report.TypeScript, err = emitter.TypeScriptType(e.renderer, schema)
		return err
	})
	g.Go(func() error {
		var err error
		report.GoStruct, err = emitter.GoStruct(schema)
		return err
	})
	g.Go(func() error {
		var err error
		report.OpenAPISpec, err = openapi.TableSpecJSON(schema)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("generation complete",
		"table", schema.TableName, "report", report.ID, "rows", len(rows))
	return report, nil
}

// CreateFieldFragment renders the DDL fragment for a single field.
func (e *Engine) CreateFieldFragment(field model.Field) string {
	return e.builder.CreateField(field)
}

// SchemaFromSQL parses a CREATE TABLE statement into a schema.
func (e *Engine) SchemaFromSQL(ddl string) (model.TableSchema, error) {
	return ingest.FromSQL(ddl)
}

// SchemaFromSpreadsheet reads a spreadsheet CSV export into a schema.
func (e *Engine) SchemaFromSpreadsheet(r io.Reader) (model.TableSchema, error) {
	return ingest.FromSpreadsheet(r)
}

// SchemaFromLabels builds a schema from comma-separated field labels,
// consulting the configured catalog for known labels.
func (e *Engine) SchemaFromLabels(ctx context.Context, labels string) (model.TableSchema, error) {
	return ingest.FromLabels(ctx, labels, e.catalog)
}
