package saves

import (
	"errors"
	"testing"
	"time"

	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems map[string][]byte

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

type brokenItems struct{}

func (brokenItems) SaveItem(string, []byte) error   { return errors.New("disk full") }
func (brokenItems) LoadItem(string) ([]byte, error) { return nil, errors.New("unreadable") }

func newManager() (*Manager, memItems) {
	items := memItems{}
	m := NewManager(items, "", logger.Nop())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return m, items
}

func TestCreateAndList(t *testing.T) {
	m, items := newManager()
	assert.False(t, m.HasSaveGame())

	first, err := m.Create("Forest", 1, nil)
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)

	second, err := m.Create("Cave", 2, map[string]string{"checkpoint": "3"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, items, "saves")

	slots, err := m.List()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, second.ID, slots[0].ID)
	assert.Equal(t, first.ID, slots[1].ID)
	assert.True(t, m.HasSaveGame())
}

func TestLoadAndDelete(t *testing.T) {
	m, items := newManager()
	slot, err := m.Create("Forest", 1, map[string]string{"coins": "12"})
	require.NoError(t, err)

	got, err := m.Load(slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "12", got.Data["coins"])
	assert.Equal(t, 1, got.Scene)

	_, err = m.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete("missing"), ErrNotFound)

	require.NoError(t, m.Delete(slot.ID))
	assert.Nil(t, items["saves"])
	assert.False(t, m.HasSaveGame())
}

func TestReadErrors(t *testing.T) {
	m := NewManager(brokenItems{}, "slots", logger.Nop())
	assert.False(t, m.HasSaveGame())
	_, err := m.List()
	assert.ErrorContains(t, err, "load slots")
	_, err = m.Create("x", 0, nil)
	assert.Error(t, err)

	items := memItems{"saves": []byte("{")}
	_, err = NewManager(items, "", nil).List()
	assert.ErrorContains(t, err, "parse saves")
}
