package bench

import "fmt"

// Matrix declares the allowed values for every benchmark axis. It is an
// explicit value constructed once and passed around, never ambient state,
// so the generator can be exercised with arbitrary synthetic axis lists.
//
// The cross product of the seven lists is the entire input surface of the
// benchmark: every combination becomes exactly one Configuration.
type Matrix struct {
	Threads               []int
	Users                 []int
	MaxFriendsPercentages []float64
	Channels              []ChannelKind
	AverageWorks          []int
	Modes                 []BenchmarkMode
	Dispatchers           []DispatcherKind
}

// DefaultMatrix returns the reference configuration space: the full sweep
// used for published results.
func DefaultMatrix() Matrix {
	return Matrix{
		Threads:               []int{1, 2, 4, 8, 16},
		Users:                 []int{10000},
		MaxFriendsPercentages: []float64{0.2},
		Channels:              ChannelKinds(),
		AverageWorks:          []int{40, 80},
		Modes:                 BenchmarkModes(),
		Dispatchers:           DispatcherKinds(),
	}
}

// QuickMatrix returns a reduced space for development and CI.
func QuickMatrix() Matrix {
	return Matrix{
		Threads:               []int{1, 4},
		Users:                 []int{1000},
		MaxFriendsPercentages: []float64{0.2},
		Channels:              []ChannelKind{ChannelRendezvous, ChannelBuffered16},
		AverageWorks:          []int{40},
		Modes:                 []BenchmarkMode{ModeUserWithFriends},
		Dispatchers:           []DispatcherKind{DispatcherForkJoin},
	}
}

// Size returns the number of configurations Generate will produce: the
// product of the seven axis cardinalities. Any empty axis makes it 0.
func (m Matrix) Size() int {
	return len(m.Threads) *
		len(m.Users) *
		len(m.MaxFriendsPercentages) *
		len(m.Channels) *
		len(m.AverageWorks) *
		len(m.Modes) *
		len(m.Dispatchers)
}

// Generate materializes the full cross product as fresh Configuration
// entities with empty accumulators.
//
// Ordering contract: the nesting order is fixed as threads, users,
// friends-fraction, channel, average-work, mode, dispatcher, with the
// outermost axis varying slowest. Downstream tooling numbers configurations
// by position, so the same matrix always yields the same sequence. Repeated
// values in an axis list are not deduplicated; they yield repeated,
// independent entities.
func (m Matrix) Generate() []*Configuration {
	out := make([]*Configuration, 0, m.Size())
	for _, threads := range m.Threads {
		for _, users := range m.Users {
			for _, friends := range m.MaxFriendsPercentages {
				for _, channel := range m.Channels {
					for _, work := range m.AverageWorks {
						for _, mode := range m.Modes {
							for _, dispatcher := range m.Dispatchers {
								out = append(out, &Configuration{
									Threads:              threads,
									Users:                users,
									MaxFriendsPercentage: friends,
									Channel:              channel,
									AverageWork:          work,
									Mode:                 mode,
									Dispatcher:           dispatcher,
								})
							}
						}
					}
				}
			}
		}
	}
	return out
}

// Validate checks the matrix against the enumerated-options contract: every
// axis list non-empty, counts positive, fractions inside [0, 1], and every
// variant a member of its closed set. Generate itself tolerates empty axes
// (producing an empty sequence); Validate is for surfaces that require a
// runnable space, such as matrix files and the CLI.
func (m Matrix) Validate() error {
	if len(m.Threads) == 0 {
		return fmt.Errorf("threads: %w", ErrEmptyAxis)
	}
	if len(m.Users) == 0 {
		return fmt.Errorf("userCounts: %w", ErrEmptyAxis)
	}
	if len(m.MaxFriendsPercentages) == 0 {
		return fmt.Errorf("maxFriendsPercentages: %w", ErrEmptyAxis)
	}
	if len(m.Channels) == 0 {
		return fmt.Errorf("channelTypes: %w", ErrEmptyAxis)
	}
	if len(m.AverageWorks) == 0 {
		return fmt.Errorf("averageWork: %w", ErrEmptyAxis)
	}
	if len(m.Modes) == 0 {
		return fmt.Errorf("benchmarkModes: %w", ErrEmptyAxis)
	}
	if len(m.Dispatchers) == 0 {
		return fmt.Errorf("dispatcherTypes: %w", ErrEmptyAxis)
	}

	for _, v := range m.Threads {
		if v < 1 {
			return fmt.Errorf("threads value %d: %w", v, ErrInvalidAxisValue)
		}
	}
	for _, v := range m.Users {
		if v < 1 {
			return fmt.Errorf("userCounts value %d: %w", v, ErrInvalidAxisValue)
		}
	}
	for _, v := range m.MaxFriendsPercentages {
		if v < 0 || v > 1 {
			return fmt.Errorf("maxFriendsPercentages value %v: %w", v, ErrInvalidAxisValue)
		}
	}
	for _, v := range m.AverageWorks {
		if v < 1 {
			return fmt.Errorf("averageWork value %d: %w", v, ErrInvalidAxisValue)
		}
	}
	for _, k := range m.Channels {
		if _, err := ParseChannelKind(string(k)); err != nil {
			return err
		}
	}
	for _, md := range m.Modes {
		if _, err := ParseBenchmarkMode(string(md)); err != nil {
			return err
		}
	}
	for _, k := range m.Dispatchers {
		if _, err := ParseDispatcherKind(string(k)); err != nil {
			return err
		}
	}
	return nil
}
