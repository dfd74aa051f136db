package ports

import (
	"context"
	"testing"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDefinitionStoreContract runs a suite of tests to verify that a
// DefinitionStore implementation adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, DefinitionBPMN, "process.bpmn", []byte("<definitions/>"))
		require.NoError(t, err, "Put should not return error")

		content, err := store.Get(ctx, DefinitionBPMN, "process.bpmn")
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "<definitions/>", string(content))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, DefinitionBPMN, "missing.bpmn")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("Kinds Are Isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, DefinitionDMN, "shared-name", []byte("dmn")))
		_, err := store.Get(ctx, DefinitionBPMN, "shared-name")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "a DMN entry must not be visible under the BPMN kind")

		require.NoError(t, store.Delete(ctx, DefinitionDMN, "shared-name"))
	})

	t.Run("Latest Returns Most Recent", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, DefinitionDMN, "first.dmn", []byte("one")))
		require.NoError(t, store.Put(ctx, DefinitionDMN, "second.dmn", []byte("two")))

		name, content, err := store.Latest(ctx, DefinitionDMN)
		require.NoError(t, err)
		assert.Equal(t, "second.dmn", name)
		assert.Equal(t, "two", string(content))

		// Replacing an older entry makes it the latest again.
		require.NoError(t, store.Put(ctx, DefinitionDMN, "first.dmn", []byte("one-v2")))
		name, content, err = store.Latest(ctx, DefinitionDMN)
		require.NoError(t, err)
		assert.Equal(t, "first.dmn", name)
		assert.Equal(t, "one-v2", string(content))

		require.NoError(t, store.Delete(ctx, DefinitionDMN, "first.dmn"))
		require.NoError(t, store.Delete(ctx, DefinitionDMN, "second.dmn"))
	})

	t.Run("Latest Empty", func(t *testing.T) {
		_, _, err := store.Latest(ctx, DefinitionDMN)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, DefinitionBPMN, "a.bpmn", []byte("a")))
		require.NoError(t, store.Put(ctx, DefinitionBPMN, "b.bpmn", []byte("b")))
		defer func() {
			_ = store.Delete(ctx, DefinitionBPMN, "a.bpmn")
			_ = store.Delete(ctx, DefinitionBPMN, "b.bpmn")
		}()

		names, err := store.List(ctx, DefinitionBPMN)
		require.NoError(t, err)
		assert.Contains(t, names, "a.bpmn")
		assert.Contains(t, names, "b.bpmn")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, DefinitionBPMN, "gone.bpmn", []byte("x")))
		require.NoError(t, store.Delete(ctx, DefinitionBPMN, "gone.bpmn"))

		_, err := store.Get(ctx, DefinitionBPMN, "gone.bpmn")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "Get after Delete should return ErrDefinitionNotFound")
	})
}
