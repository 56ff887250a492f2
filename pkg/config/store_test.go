package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReloadRestoresDefaults(t *testing.T) {
	store, err := NewStore(parse(t, compiledFixture), parse(t, "GREETING: \"Howdy\"\n"))
	require.NoError(t, err)

	greeting, _ := store.Current().Variable("GREETING")
	assert.Equal(t, "Howdy", greeting)

	// A user document that no longer carries the key restores the
	// compiled-in value.
	_, err = store.Reload(nil)
	require.NoError(t, err)
	greeting, _ = store.Current().Variable("GREETING")
	assert.Equal(t, "Hello", greeting)
}

func TestStore_FailedReloadKeepsPrevious(t *testing.T) {
	store, err := NewStore(parse(t, compiledFixture), nil)
	require.NoError(t, err)
	before := store.Current()

	_, err = store.Reload(parse(t, "GREETING:\n  nested: true\n"))
	require.Error(t, err)

	assert.Same(t, before, store.Current(), "rejected reload must not disturb the live snapshot")
}

func TestStore_InFlightReadersKeepTheirSnapshot(t *testing.T) {
	store, err := NewStore(parse(t, compiledFixture), nil)
	require.NoError(t, err)

	held := store.Current()
	_, err = store.Reload(parse(t, "GREETING: \"Howdy\"\n"))
	require.NoError(t, err)

	greeting, _ := held.Variable("GREETING")
	assert.Equal(t, "Hello", greeting, "a snapshot handed out before reload stays intact")
	greeting, _ = store.Current().Variable("GREETING")
	assert.Equal(t, "Howdy", greeting)
}

func TestStore_ConcurrentReadersDuringReload(t *testing.T) {
	store, err := NewStore(parse(t, compiledFixture), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				greeting, ok := store.Current().Variable("GREETING")
				assert.True(t, ok)
				assert.Contains(t, []string{"Hello", "Howdy"}, greeting)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		user := parse(t, "GREETING: \"Howdy\"\n")
		if i%2 == 0 {
			user = nil
		}
		_, err := store.Reload(user)
		require.NoError(t, err)
	}
	wg.Wait()
}
