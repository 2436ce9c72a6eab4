package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const schemaBaseURL = "https://github.com/bnema/dockyard/"

// ConfigSchema returns the JSON schema of config.toml.
func ConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(schemaBaseURL + "config.schema.json")
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard, a docking layout engine for editor panels"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json into dir.
// This is called automatically when a default config is created.
func GenerateSchemaFile(dir string) error {
	data, err := ConfigSchema()
	if err != nil {
		return err
	}

	schemaFile := filepath.Join(dir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// LayoutSchemaGenerator implements port.LayoutSchemaProvider.
type LayoutSchemaGenerator struct{}

// NewLayoutSchemaGenerator creates a new LayoutSchemaGenerator.
func NewLayoutSchemaGenerator() *LayoutSchemaGenerator {
	return &LayoutSchemaGenerator{}
}

// LayoutSchema returns the JSON schema of the persisted layout document.
func (*LayoutSchemaGenerator) LayoutSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.LayoutSnapshot{})

	schema.ID = jsonschema.ID(schemaBaseURL + "layout.schema.json")
	schema.Title = "Dockyard Layout"
	schema.Description = fmt.Sprintf("Persisted docking layout, version %d", entity.LayoutSnapshotVersion)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout schema: %w", err)
	}
	return data, nil
}
