package ring_array_go_test

import (
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"
	ra "github.com/sushydev/ring_array_go"
	"pgregory.net/rapid"
)

func checkInvariants(t *rapid.T, array *ra.RingArray[int], model []int) {
	if array.Start() < 0 || array.Start() >= array.Cap() {
		t.Fatalf("start %d outside [0, %d)", array.Start(), array.Cap())
	}
	if array.Len() < 0 || array.Len() > array.Cap() {
		t.Fatalf("length %d outside [0, %d]", array.Len(), array.Cap())
	}
	if array.Len() != len(model) {
		t.Fatalf("length %d, model has %d", array.Len(), len(model))
	}
	for i, want := range model {
		got, err := array.Read(i)
		if err != nil || got != want {
			t.Fatalf("read(%d) = %d (%v), want %d", i, got, err, want)
		}
	}
}

// Random operation sequences against a slice model.
func TestRingArrayMatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 8).Draw(t, "capacity")
		array, err := ra.NewRingArray[int](capacity)
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		var model []int
		lastCap := array.Cap()

		steps := rapid.IntRange(0, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom([]string{"push", "pop", "shift", "unshift", "set"}).Draw(t, "op")
			value := rapid.IntRange(-1000, 1000).Draw(t, "value")

			switch op {
			case "push":
				full := array.Len() == array.Cap()
				array.Push(value)
				model = append(model, value)
				if full && array.Cap() != 2*lastCap {
					t.Fatalf("push on full array: capacity %d, want %d", array.Cap(), 2*lastCap)
				}
			case "unshift":
				full := array.Len() == array.Cap()
				array.Unshift(value)
				model = append([]int{value}, model...)
				if full && array.Cap() != 2*lastCap {
					t.Fatalf("unshift on full array: capacity %d, want %d", array.Cap(), 2*lastCap)
				}
			case "pop":
				got, err := array.PopValue()
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("pop on empty array succeeded")
					}
					break
				}
				if err != nil || got != model[len(model)-1] {
					t.Fatalf("pop = %d (%v), want %d", got, err, model[len(model)-1])
				}
				model = model[:len(model)-1]
			case "shift":
				got, err := array.ShiftValue()
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("shift on empty array succeeded")
					}
					break
				}
				if err != nil || got != model[0] {
					t.Fatalf("shift = %d (%v), want %d", got, err, model[0])
				}
				model = model[1:]
			case "set":
				if len(model) == 0 {
					break
				}
				index := rapid.IntRange(0, len(model)-1).Draw(t, "index")
				if err := array.Set(value, index); err != nil {
					t.Fatalf("set: %v", err)
				}
				model[index] = value
			}

			if array.Cap() < lastCap {
				t.Fatalf("capacity shrank from %d to %d", lastCap, array.Cap())
			}
			if array.Cap() != lastCap && array.Cap() != 2*lastCap {
				t.Fatalf("capacity grew from %d to %d, want a single doubling", lastCap, array.Cap())
			}
			lastCap = array.Cap()

			checkInvariants(t, array, model)
		}
	})
}

func TestUnshiftShiftIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		array, _ := ra.NewRingArray[int](rapid.IntRange(1, 6).Draw(t, "capacity"))
		model := rapid.SliceOfN(rapid.Int(), 0, 20).Draw(t, "items")
		for _, v := range model {
			array.Push(v)
		}

		array.Unshift(rapid.Int().Draw(t, "front"))
		if err := array.Shift(); err != nil {
			t.Fatalf("shift: %v", err)
		}

		checkInvariants(t, array, model)
	})
}

func TestPushPopIsLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		array, _ := ra.NewRingArray[int](rapid.IntRange(1, 6).Draw(t, "capacity"))
		items := rapid.SliceOfN(rapid.Int(), 1, 50).Draw(t, "items")
		for _, v := range items {
			array.Push(v)
		}

		for i := len(items) - 1; i >= 0; i-- {
			got, err := array.PopValue()
			if err != nil || got != items[i] {
				t.Fatalf("pop = %d (%v), want %d", got, err, items[i])
			}
		}
		if array.Len() != 0 {
			t.Fatalf("length %d after draining", array.Len())
		}
	})
}

// Interleaved push/shift checked against eapache/queue as the FIFO reference.
func TestPushShiftMatchesQueue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		array, _ := ra.NewRingArray[int](rapid.IntRange(1, 6).Draw(t, "capacity"))
		reference := queue.New()

		steps := rapid.IntRange(1, 150).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "enqueue") {
				v := rapid.Int().Draw(t, "value")
				array.Push(v)
				reference.Add(v)
			} else if reference.Length() > 0 {
				want := reference.Remove().(int)
				got, err := array.ShiftValue()
				if err != nil || got != want {
					t.Fatalf("shift = %d (%v), want %d", got, err, want)
				}
			}

			if array.Len() != reference.Length() {
				t.Fatalf("length %d, queue has %d", array.Len(), reference.Length())
			}
			for j := 0; j < reference.Length(); j++ {
				got, _ := array.Read(j)
				if got != reference.Get(j).(int) {
					t.Fatalf("read(%d) = %d, queue has %d", j, got, reference.Get(j))
				}
			}
		}
	})
}

func TestReadIsIdempotent(t *testing.T) {
	array, err := ra.NewRingArray[int](3)
	require.NoError(t, err)

	array.Push(1)
	array.Unshift(0)
	array.Push(2)
	array.Unshift(-1)

	for i := 0; i < array.Len(); i++ {
		first, err := array.Read(i)
		require.NoError(t, err)
		second, err := array.Read(i)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}
