package port

import "github.com/bnema/dockyard/internal/domain/entity"

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}

// LayoutSchemaProvider describes the persisted layout document.
type LayoutSchemaProvider interface {
	// LayoutSchema returns the JSON schema of entity.LayoutSnapshot.
	LayoutSchema() ([]byte, error)
}
