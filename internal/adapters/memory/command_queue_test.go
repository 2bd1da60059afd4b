package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satd/internal/domain"
)

func displayText(number uint8, text string) domain.DisplayText {
	return domain.DisplayText{
		CommandHeader: domain.CommandHeader{
			Details: domain.CommandDetails{Number: number, Kind: domain.KindDisplayText},
			Devices: domain.DeviceIdentities{Source: domain.DeviceUICC, Destination: domain.DeviceDisplay},
		},
		Text: domain.TextString{Alphabet: domain.Alphabet8BitData, Data: []byte(text)},
	}
}

func TestReserve_LowestFreeSlot(t *testing.T) {
	q := NewCommandQueue(3)

	for want := 0; want < 3; want++ {
		id, err := q.Reserve(domain.KindDisplayText, displayText(uint8(want), "x"))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	_, err := q.Take(1)
	require.NoError(t, err)

	id, err := q.Reserve(domain.KindGetInkey, domain.GetInkey{})
	require.NoError(t, err)
	assert.Equal(t, 1, id, "released slot should be reused first")
}

func TestReserve_QueueFull(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	for i := 0; i < DefaultCapacity; i++ {
		_, err := q.Reserve(domain.KindMoreTime, domain.MoreTime{})
		require.NoError(t, err)
	}

	id, err := q.Reserve(domain.KindMoreTime, domain.MoreTime{})
	assert.ErrorIs(t, err, domain.ErrQueueFull)
	assert.Equal(t, -1, id)

	_, err = q.Take(4)
	require.NoError(t, err)

	id, err = q.Reserve(domain.KindMoreTime, domain.MoreTime{})
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}

func TestTake_RoundTrip(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)
	cmd := displayText(7, "Hello")

	id, err := q.Reserve(domain.KindDisplayText, cmd)
	require.NoError(t, err)

	entry, err := q.Take(id)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDisplayText, entry.Kind)
	assert.Equal(t, id, entry.ID)
	if diff := cmp.Diff(domain.ProactiveCommand(cmd), entry.Command); diff != "" {
		t.Errorf("stored command mismatch (-want +got):\n%s", diff)
	}

	_, err = q.Take(id)
	assert.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestPeek_DoesNotConsume(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	id, err := q.Reserve(domain.KindSetupCall, domain.SetupCall{Address: "112"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		entry, err := q.Peek(id)
		require.NoError(t, err)
		assert.Equal(t, domain.KindSetupCall, entry.Kind)
	}
	assert.Equal(t, 1, q.Len())
}

func TestPeek_UnknownIDs(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	for _, id := range []int{-1, 0, 5, DefaultCapacity, 1000} {
		_, err := q.Peek(id)
		assert.ErrorIs(t, err, domain.ErrCommandNotFound, "id %d", id)
		_, err = q.Take(id)
		assert.ErrorIs(t, err, domain.ErrCommandNotFound, "id %d", id)
	}
}

func TestClearAll(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	ids := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		id, err := q.Reserve(domain.KindSelectItem, domain.SelectItem{})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	q.ClearAll()

	assert.Equal(t, 0, q.Len())
	for _, id := range ids {
		_, err := q.Peek(id)
		assert.ErrorIs(t, err, domain.ErrCommandNotFound)
		_, err = q.Take(id)
		assert.ErrorIs(t, err, domain.ErrCommandNotFound)
	}
}

func TestMarkResponded(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	id, err := q.Reserve(domain.KindDisplayText, displayText(1, "hi"))
	require.NoError(t, err)
	require.NoError(t, q.MarkResponded(id))

	entry, err := q.Peek(id)
	require.NoError(t, err)
	assert.True(t, entry.Responded)

	assert.ErrorIs(t, q.MarkResponded(id+1), domain.ErrCommandNotFound)
}

func TestMarkLaunched(t *testing.T) {
	q := NewCommandQueue(DefaultCapacity)

	id, err := q.Reserve(domain.KindDisplayText, displayText(1, "hi"))
	require.NoError(t, err)
	require.NoError(t, q.MarkLaunched(id))

	entry, err := q.Peek(id)
	require.NoError(t, err)
	assert.True(t, entry.Launched)
	assert.False(t, entry.Responded)

	assert.ErrorIs(t, q.MarkLaunched(id+1), domain.ErrCommandNotFound)
}

func TestNewCommandQueue_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewCommandQueue(0).Capacity())
	assert.Equal(t, DefaultCapacity, NewCommandQueue(-3).Capacity())
	assert.Equal(t, 4, NewCommandQueue(4).Capacity())
}
