package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration and layout schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
	layout   port.LayoutSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider, layout port.LayoutSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
		layout:   layout,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section restricts the keys to one section when set.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute retrieves configuration keys with their metadata, sorted by key.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	if input.Section != "" {
		filtered := keys[:0:0]
		for _, k := range keys {
			if k.Section == input.Section {
				filtered = append(filtered, k)
			}
		}
		keys = filtered
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Key < keys[j].Key })
	return &GetConfigSchemaOutput{
		Keys: keys,
	}, nil
}

// LayoutSchema returns the JSON schema of the persisted layout document.
func (uc *GetConfigSchemaUseCase) LayoutSchema(_ context.Context) ([]byte, error) {
	if uc.layout == nil {
		return nil, fmt.Errorf("layout schema provider not configured")
	}
	data, err := uc.layout.LayoutSchema()
	if err != nil {
		return nil, fmt.Errorf("generate layout schema: %w", err)
	}
	return data, nil
}
