package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SetGetDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(KeyToken, "tok-1"))

	got, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	// Overwrite
	require.NoError(t, store.Set(KeyToken, "tok-2"))
	got, err = store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)

	require.NoError(t, store.Delete(KeyToken))
	got, err = store.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(KeyToken))
}

func TestSQLiteStore_MissingKeyIsEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get("never-set")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyToken, "tok-keep"))
	require.NoError(t, store.Set(KeyDisplayName, "Captain"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-keep", token)

	name, err := reopened.Get(KeyDisplayName)
	require.NoError(t, err)
	assert.Equal(t, "Captain", name)
}

func TestNewStore_Factory(t *testing.T) {
	store, err := NewStore(StoreConfig{
		Type:             "sqlite",
		ConnectionString: filepath.Join(t.TempDir(), "s.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	store.Close()

	_, err = NewStore(StoreConfig{Type: "mongodb"})
	assert.Error(t, err)

	_, err = NewStore(StoreConfig{Type: "postgres"})
	assert.Error(t, err, "postgres requires a connection string")
}
