package config

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"sigs.k8s.io/yaml"

	oerrors "github.com/apollo-gears/cli/internal/errors"
	"github.com/apollo-gears/cli/internal/pkgmanager"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap classifies every config validation failure as ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration files against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if def.Err() != nil {
		return nil, fmt.Errorf("looking up #Config: %w", def.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// Validate checks raw YAML config data against the schema. Unknown fields
// and wrongly typed values are reported as ValidationErrors.
func (v *Validator) Validate(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ValidationErrors{{Field: "(root)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	// An empty document is an empty config.
	if trimmed := bytes.TrimSpace(jsonData); len(trimmed) == 0 || string(trimmed) == "null" {
		jsonData = []byte("{}")
	}

	value := v.ctx.CompileBytes(jsonData)
	if value.Err() != nil {
		return fmt.Errorf("compiling config: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	return v.Validate(data)
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "(root)", Message: err.Error()})
	}
	return errs
}

// ValidateConfig checks the semantic constraints of a loaded config.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.PackageManager != "" && !slices.Contains(pkgmanager.Names(), cfg.PackageManager) {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: fmt.Sprintf("must be one of %s", strings.Join(pkgmanager.Names(), ", ")),
		})
	}

	for i, p := range cfg.TemplatePaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("templatePaths[%d]", i),
				Message: "must not be empty or whitespace only",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
