package memory

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"satd/internal/domain"
)

// Property: N reservations succeed, the next one fails, one take restores one slot
func TestQueueCapacityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("capacity is exact and restored by take", prop.ForAll(
		func(capacity int, victim int) bool {
			q := NewCommandQueue(capacity)
			for i := 0; i < capacity; i++ {
				id, err := q.Reserve(domain.KindMoreTime, domain.MoreTime{})
				if err != nil || id != i {
					return false
				}
			}
			if _, err := q.Reserve(domain.KindMoreTime, domain.MoreTime{}); !errors.Is(err, domain.ErrQueueFull) {
				return false
			}

			victim %= capacity
			if _, err := q.Take(victim); err != nil {
				return false
			}
			id, err := q.Reserve(domain.KindMoreTime, domain.MoreTime{})
			return err == nil && id == victim
		},
		gen.IntRange(1, 32),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Property: a reserved command is taken back unchanged, exactly once
func TestQueueRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("take returns what reserve stored", prop.ForAll(
		func(number uint8, address string) bool {
			q := NewCommandQueue(DefaultCapacity)
			cmd := domain.SetupCall{
				CommandHeader: domain.CommandHeader{
					Details: domain.CommandDetails{Number: number, Kind: domain.KindSetupCall},
				},
				Address: address,
			}

			id, err := q.Reserve(domain.KindSetupCall, cmd)
			if err != nil {
				return false
			}
			entry, err := q.Take(id)
			if err != nil {
				return false
			}
			got, ok := entry.Command.(domain.SetupCall)
			if !ok || got.Address != address || got.Details.Number != number {
				return false
			}
			_, err = q.Take(id)
			return errors.Is(err, domain.ErrCommandNotFound)
		},
		gen.UInt8(),
		gen.NumString(),
	))

	properties.TestingRun(t)
}
