package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/fsutil"
	"github.com/specialistvlad/domprops/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL bundle loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under paths, parses it and merges all
// declared bundles into one model. Bundle names must be unique across files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	origin := make(map[string]string)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		bundles, err := l.parse(ctx, parser, file, src)
		if err != nil {
			return nil, err
		}
		for _, b := range bundles {
			if prev, ok := origin[b.Name]; ok {
				return nil, fmt.Errorf("bundle %q declared in both %s and %s", b.Name, prev, file)
			}
			origin[b.Name] = file
			model.Bundles = append(model.Bundles, b)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "bundles", len(model.Bundles))
	return model, nil
}

// LoadSource parses bundles from an in-memory source, such as an embedded
// file.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) ([]*config.Bundle, error) {
	return l.parse(ctx, hclparse.NewParser(), filename, src)
}

func (l *Loader) parse(ctx context.Context, parser *hclparse.Parser, filename string, src []byte) ([]*config.Bundle, error) {
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	evalCtx := newEvalContext()

	var root schema.File
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if err := rejectUnknown(root.Remain); err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
	}

	bundles := make([]*config.Bundle, 0, len(root.Bundles))
	for _, sb := range root.Bundles {
		b, err := l.translateBundle(ctx, sb, filename, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// rejectUnknown fails on any top-level content other than bundle blocks.
func rejectUnknown(body hcl.Body) error {
	if body == nil {
		return nil
	}
	_, diags := body.Content(&hcl.BodySchema{})
	if diags.HasErrors() {
		return diags
	}
	return nil
}
