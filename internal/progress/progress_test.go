package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingKeysReadAsDefaults(t *testing.T) {
	p := New(NewMemoryStore())
	rec := p.Load()
	assert.Equal(t, Record{}, rec)
	assert.Equal(t, 7, p.Int("nothing", 7))
}

func TestMalformedValuesFallBack(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyTotalCurrency, "12abc"))
	require.NoError(t, store.Set(KeyHealthUpgrade, "-3"))
	require.NoError(t, store.Set(KeyClickPowerUpgrade, "2"))

	rec := New(store).Load()
	assert.Equal(t, 0, rec.TotalCurrency)
	assert.Equal(t, 0, rec.HealthUpgrade)
	assert.Equal(t, 2, rec.ClickPowerUpgrade)
}

func TestSetIntWritesDecimalStrings(t *testing.T) {
	store := NewMemoryStore()
	p := New(store)
	require.NoError(t, p.SetInt(KeyHighScore, 1234))

	raw, ok := store.Get(KeyHighScore)
	require.True(t, ok)
	assert.Equal(t, "1234", raw)
}

func TestRaiseHighScoreIsMonotonic(t *testing.T) {
	p := New(nil)
	assert.True(t, p.RaiseHighScore(10))
	assert.False(t, p.RaiseHighScore(4))
	assert.False(t, p.RaiseHighScore(10))
	assert.True(t, p.RaiseHighScore(11))
	assert.Equal(t, 11, p.HighScore())
}

func TestCollectRunScoreOnlyOnce(t *testing.T) {
	store := NewMemoryStore()
	p := New(store)
	require.NoError(t, p.SetInt(KeyTotalCurrency, 5))
	require.NoError(t, p.SaveRunScore(20))

	collected, total := p.CollectRunScore()
	assert.Equal(t, 20, collected)
	assert.Equal(t, 25, total)
	_, present := store.Get(KeyLastRunScore)
	assert.False(t, present)

	collected, total = p.CollectRunScore()
	assert.Equal(t, 0, collected)
	assert.Equal(t, 25, total)
}

func TestCollectDropsMalformedRunScore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyLastRunScore, "oops"))
	p := New(store)

	collected, total := p.CollectRunScore()
	assert.Zero(t, collected)
	assert.Zero(t, total)
	_, present := store.Get(KeyLastRunScore)
	assert.False(t, present)
}

// brokenStore fails every write to one key.
type brokenStore struct {
	*MemoryStore
	key string
}

func (s brokenStore) Set(key, value string) error {
	if key == s.key {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

func TestCollectKeepsRunScoreWhenTotalWriteFails(t *testing.T) {
	mem := NewMemoryStore()
	require.NoError(t, mem.Set(KeyTotalCurrency, "5"))
	require.NoError(t, mem.Set(KeyLastRunScore, "20"))
	p := New(brokenStore{MemoryStore: mem, key: KeyTotalCurrency})

	collected, total := p.CollectRunScore()
	assert.Zero(t, collected)
	assert.Equal(t, 5, total)

	raw, present := mem.Get(KeyLastRunScore)
	require.True(t, present, "run score stays pending")
	assert.Equal(t, "20", raw)
	raw, _ = mem.Get(KeyTotalCurrency)
	assert.Equal(t, "5", raw)
}

func TestSetIntReturnsStoreError(t *testing.T) {
	p := New(brokenStore{MemoryStore: NewMemoryStore(), key: KeyHealthUpgrade})
	assert.Error(t, p.SetInt(KeyHealthUpgrade, 1))
	assert.NoError(t, p.SetInt(KeyClickPowerUpgrade, 1))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "save.json")
	s, err := OpenFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyHighScore, "42"))
	require.NoError(t, s.Set(KeyLastRunScore, "7"))
	require.NoError(t, s.Delete(KeyLastRunScore))
	require.NoError(t, s.Delete("never-set"))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, ok := reopened.Get(KeyHighScore)
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	_, ok = reopened.Get(KeyLastRunScore)
	assert.False(t, ok)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := OpenFileStore(path)
	assert.Error(t, err)
}

func TestOpenDefaultUsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := OpenDefault(path)
	require.NoError(t, err)

	p := New(store)
	require.NoError(t, p.SetInt(KeyHealthUpgrade, 3))

	again, err := OpenDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 3, New(again).Int(KeyHealthUpgrade, 0))
}
