package bench

import (
	"errors"
	"reflect"
	"testing"
)

// syntheticMatrix builds a small space with distinct cardinalities so
// positional decomposition is unambiguous.
func syntheticMatrix() Matrix {
	return Matrix{
		Threads:               []int{1, 2, 4},
		Users:                 []int{100, 200},
		MaxFriendsPercentages: []float64{0.1, 0.2},
		Channels:              []ChannelKind{ChannelRendezvous, ChannelBuffered16},
		AverageWorks:          []int{40},
		Modes:                 []BenchmarkMode{ModeUserWithFriends, ModeUserWithoutFriends},
		Dispatchers:           []DispatcherKind{DispatcherForkJoin, DispatcherExperimental},
	}
}

func TestGenerateCrossProduct(t *testing.T) {
	m := syntheticMatrix()

	want := 3 * 2 * 2 * 2 * 1 * 2 * 2
	if m.Size() != want {
		t.Fatalf("Size() = %d, want %d", m.Size(), want)
	}

	configs := m.Generate()
	if len(configs) != want {
		t.Fatalf("Generate() produced %d entities, want %d", len(configs), want)
	}

	// Entity at position i must match the nested-loop decomposition of i,
	// with the dispatcher axis varying fastest.
	for i, c := range configs {
		rem := i
		dispatcher := m.Dispatchers[rem%len(m.Dispatchers)]
		rem /= len(m.Dispatchers)
		mode := m.Modes[rem%len(m.Modes)]
		rem /= len(m.Modes)
		work := m.AverageWorks[rem%len(m.AverageWorks)]
		rem /= len(m.AverageWorks)
		channel := m.Channels[rem%len(m.Channels)]
		rem /= len(m.Channels)
		friends := m.MaxFriendsPercentages[rem%len(m.MaxFriendsPercentages)]
		rem /= len(m.MaxFriendsPercentages)
		users := m.Users[rem%len(m.Users)]
		rem /= len(m.Users)
		threads := m.Threads[rem%len(m.Threads)]

		if c.Threads != threads || c.Users != users || c.MaxFriendsPercentage != friends ||
			c.Channel != channel || c.AverageWork != work || c.Mode != mode || c.Dispatcher != dispatcher {
			t.Fatalf("entity %d = %v, want threads=%d users=%d friends=%v channel=%s work=%d mode=%s dispatcher=%s",
				i, c, threads, users, friends, channel, work, mode, dispatcher)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	m := syntheticMatrix()
	first := m.Generate()
	second := m.Generate()

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(*first[i], *second[i]) {
			t.Fatalf("entity %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateEmptyAxis(t *testing.T) {
	empty := func(name string, mutate func(*Matrix)) {
		t.Run(name, func(t *testing.T) {
			m := syntheticMatrix()
			mutate(&m)
			if got := m.Generate(); len(got) != 0 {
				t.Errorf("Generate() with empty %s axis produced %d entities, want 0", name, len(got))
			}
			if m.Size() != 0 {
				t.Errorf("Size() with empty %s axis = %d, want 0", name, m.Size())
			}
		})
	}

	empty("threads", func(m *Matrix) { m.Threads = nil })
	empty("users", func(m *Matrix) { m.Users = nil })
	empty("friends", func(m *Matrix) { m.MaxFriendsPercentages = nil })
	empty("channels", func(m *Matrix) { m.Channels = nil })
	empty("work", func(m *Matrix) { m.AverageWorks = nil })
	empty("modes", func(m *Matrix) { m.Modes = nil })
	empty("dispatchers", func(m *Matrix) { m.Dispatchers = nil })
}

func TestGenerateKeepsDuplicates(t *testing.T) {
	m := syntheticMatrix()
	m.Threads = []int{4, 4}

	configs := m.Generate()
	if len(configs) != m.Size() {
		t.Fatalf("duplicates were deduplicated: got %d entities, want %d", len(configs), m.Size())
	}
}

func TestMatrixValidate(t *testing.T) {
	if err := DefaultMatrix().Validate(); err != nil {
		t.Fatalf("DefaultMatrix().Validate() = %v", err)
	}
	if err := QuickMatrix().Validate(); err != nil {
		t.Fatalf("QuickMatrix().Validate() = %v", err)
	}

	t.Run("empty axis", func(t *testing.T) {
		m := syntheticMatrix()
		m.Channels = nil
		err := m.Validate()
		if !errors.Is(err, ErrEmptyAxis) {
			t.Errorf("Validate() = %v, want ErrEmptyAxis", err)
		}
	})

	t.Run("non-positive threads", func(t *testing.T) {
		m := syntheticMatrix()
		m.Threads = []int{0}
		err := m.Validate()
		if !errors.Is(err, ErrInvalidAxisValue) {
			t.Errorf("Validate() = %v, want ErrInvalidAxisValue", err)
		}
	})

	t.Run("fraction out of range", func(t *testing.T) {
		m := syntheticMatrix()
		m.MaxFriendsPercentages = []float64{1.5}
		err := m.Validate()
		if !errors.Is(err, ErrInvalidAxisValue) {
			t.Errorf("Validate() = %v, want ErrInvalidAxisValue", err)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		m := syntheticMatrix()
		m.Channels = []ChannelKind{"BUFFERED_999"}
		err := m.Validate()
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Validate() = %v, want *ParseError", err)
		}
	})
}
