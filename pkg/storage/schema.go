package storage

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var documentSchema string

// FieldError is one schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the schema violations of a snapshot.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("storage: snapshot failed schema validation:")
	for _, e := range ve.Errors {
		fmt.Fprintf(&sb, " %s: %s;", e.Field, e.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return schema, schemaErr
}

// DocumentSchema returns the embedded JSON schema for persisted snapshots.
func DocumentSchema() string {
	return documentSchema
}

// ValidateSnapshot checks raw JSON against the snapshot schema. It returns a
// *ValidationError for schema violations and a plain error for payloads that
// are not JSON at all.
func ValidateSnapshot(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("storage: compile schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("storage: decode snapshot: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
	}
	return ve
}
