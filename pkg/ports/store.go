package ports

import "context"

// DefinitionKind distinguishes the two document families a store holds.
type DefinitionKind string

const (
	DefinitionBPMN DefinitionKind = "bpmn"
	DefinitionDMN  DefinitionKind = "dmn"
)

// DefinitionStore persists uploaded definition documents keyed by filename.
// The store owns blob lifecycle (store/replace/clear); the core only ever
// receives fully-parsed, immutable models built from these blobs.
type DefinitionStore interface {
	// Put stores or replaces a definition document.
	Put(ctx context.Context, kind DefinitionKind, filename string, content []byte) error

	// Get retrieves one document.
	// Returns domain.ErrDefinitionNotFound if it does not exist.
	Get(ctx context.Context, kind DefinitionKind, filename string) ([]byte, error)

	// Latest returns the most recently stored document of the given kind.
	// Returns domain.ErrDefinitionNotFound if the store holds none.
	Latest(ctx context.Context, kind DefinitionKind) (string, []byte, error)

	// List returns the stored filenames of the given kind.
	List(ctx context.Context, kind DefinitionKind) ([]string, error)

	// Delete removes one document.
	Delete(ctx context.Context, kind DefinitionKind, filename string) error
}
