// Package bench defines the configuration space and result-recording model
// for the chat messaging benchmark.
//
// The package is not the benchmark itself: the simulated chat workload, the
// user/friend graph, and the timing loop live in an external harness. What
// lives here is the part with actual design content:
//
//   - Closed axis variant sets (channel behavior, dispatcher behavior,
//     workload mode), each carrying a factory for its concurrency primitive
//   - The Configuration entity: an immutable 7-tuple of axis values plus two
//     append-only per-run accumulators
//   - The Matrix descriptor and its deterministic cross-product generator
//   - Mean / sample-standard-deviation aggregation over accumulators
//   - The flat-record and summary-row serialization contract
//
// The harness iterates the generated configurations, builds a fresh channel
// and dispatcher per run from the entity's axis values, runs the workload,
// and appends one sample pair per run via AddRun. Everything in this package
// is synchronous and unlocked; serializing access to a single entity is the
// caller's responsibility.
package bench

import "time"

// ChannelKind selects the buffering behavior of the communication channel
// handed to the workload. The set is closed: these five variants are the
// entire space, and parsing is a case-sensitive exact match.
type ChannelKind string

const (
	// ChannelRendezvous is a synchronous handoff: every send blocks until
	// a matching receive is ready.
	ChannelRendezvous ChannelKind = "RENDEZVOUS"

	// ChannelUnlimited never blocks a sender; pending messages are queued
	// without bound.
	ChannelUnlimited ChannelKind = "UNLIMITED"

	// ChannelBuffered1 holds at most 1 pending message.
	ChannelBuffered1 ChannelKind = "BUFFERED_1"

	// ChannelBuffered16 holds at most 16 pending messages.
	ChannelBuffered16 ChannelKind = "BUFFERED_16"

	// ChannelBuffered256 holds at most 256 pending messages.
	ChannelBuffered256 ChannelKind = "BUFFERED_256"
)

// UnlimitedCapacity is the Capacity() sentinel for ChannelUnlimited.
const UnlimitedCapacity = -1

// ChannelKinds returns all channel variants in declaration order.
func ChannelKinds() []ChannelKind {
	return []ChannelKind{
		ChannelRendezvous,
		ChannelUnlimited,
		ChannelBuffered1,
		ChannelBuffered16,
		ChannelBuffered256,
	}
}

// String returns the canonical variant name, which is also the flat-record
// token for this axis.
func (k ChannelKind) String() string {
	return string(k)
}

// Capacity returns the buffering capacity this variant constructs channels
// with: 0 for a synchronous handoff, UnlimitedCapacity for an unbounded
// queue, or a fixed positive size. A value outside the closed set fails
// with a *ParseError, like every other out-of-set variant in this package.
func (k ChannelKind) Capacity() (int, error) {
	switch k {
	case ChannelRendezvous:
		return 0, nil
	case ChannelUnlimited:
		return UnlimitedCapacity, nil
	case ChannelBuffered1:
		return 1, nil
	case ChannelBuffered16:
		return 16, nil
	case ChannelBuffered256:
		return 256, nil
	default:
		return 0, &ParseError{Field: "channelType", Value: string(k), Reason: "unknown channel variant"}
	}
}

// ParseChannelKind parses a canonical variant name. The match is exact and
// case-sensitive; anything else fails with a *ParseError.
func ParseChannelKind(s string) (ChannelKind, error) {
	for _, k := range ChannelKinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", &ParseError{Field: "channelType", Value: s, Reason: "unknown channel variant"}
}

// DispatcherKind selects the concurrency executor handed to the workload.
// Each variant constructs an independent executor sized to exactly the
// requested parallelism degree; see New.
type DispatcherKind string

const (
	// DispatcherForkJoin builds a work-stealing pool: each worker owns a
	// deque and idle workers steal from siblings.
	DispatcherForkJoin DispatcherKind = "FORK_JOIN"

	// DispatcherExperimental builds a fixed pool whose minimum and maximum
	// size are both the requested degree, with every worker draining a
	// single shared queue.
	DispatcherExperimental DispatcherKind = "EXPERIMENTAL"
)

// DispatcherKinds returns all dispatcher variants in declaration order.
func DispatcherKinds() []DispatcherKind {
	return []DispatcherKind{DispatcherForkJoin, DispatcherExperimental}
}

// String returns the canonical variant name.
func (k DispatcherKind) String() string {
	return string(k)
}

// ParseDispatcherKind parses a canonical variant name, case-sensitively.
func ParseDispatcherKind(s string) (DispatcherKind, error) {
	for _, k := range DispatcherKinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", &ParseError{Field: "dispatcherType", Value: s, Reason: "unknown dispatcher variant"}
}

// BenchmarkMode tags which chat workload shape a run uses. The semantics
// belong to the external workload; this package only threads the tag through
// configuration and serialization.
type BenchmarkMode string

const (
	// ModeUserWithFriends runs the workload over a user graph with friend
	// relationships.
	ModeUserWithFriends BenchmarkMode = "USER_WITH_FRIENDS"

	// ModeUserWithoutFriends runs the workload with no friend graph.
	ModeUserWithoutFriends BenchmarkMode = "USER_WITHOUT_FRIENDS"
)

// BenchmarkModes returns all workload modes in declaration order.
func BenchmarkModes() []BenchmarkMode {
	return []BenchmarkMode{ModeUserWithFriends, ModeUserWithoutFriends}
}

// String returns the canonical variant name.
func (m BenchmarkMode) String() string {
	return string(m)
}

// ParseBenchmarkMode parses a canonical variant name, case-sensitively.
func ParseBenchmarkMode(s string) (BenchmarkMode, error) {
	for _, m := range BenchmarkModes() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", &ParseError{Field: "benchmarkMode", Value: s, Reason: "unknown benchmark mode"}
}

// Configuration is one point in the configuration space: an immutable tuple
// of axis values plus the per-run measurement accumulators. Entities are
// created by Matrix.Generate (empty accumulators) or ParseRecord, mutated
// only by AddRun, and discarded after their summary row is produced.
type Configuration struct {
	// Threads is the parallelism degree passed to the dispatcher factory.
	Threads int

	// Users is the number of simulated chat users.
	Users int

	// MaxFriendsPercentage is the maximum fraction of the user population
	// any single user may have as friends, in the range 0 to 1.
	MaxFriendsPercentage float64

	// Channel selects the communication primitive for this run.
	Channel ChannelKind

	// AverageWork is the average number of work units a user performs per
	// message.
	AverageWork int

	// Mode selects the workload shape.
	Mode BenchmarkMode

	// Dispatcher selects the concurrency executor.
	Dispatcher DispatcherKind

	// Accumulators. The two sequences grow in lock-step, one entry each
	// per completed run; AddRun is the only mutation point.
	sentMessages     []int64
	receivedMessages []int64
}

// AddRun appends one completed run's sample pair. Appending to both
// sequences in a single call keeps them the same length, which the
// statistics aggregation relies on.
func (c *Configuration) AddRun(sent, received int64) {
	c.sentMessages = append(c.sentMessages, sent)
	c.receivedMessages = append(c.receivedMessages, received)
}

// Runs returns how many sample pairs have been recorded.
func (c *Configuration) Runs() int {
	return len(c.sentMessages)
}

// SentMessages returns a copy of the sent-message accumulator.
func (c *Configuration) SentMessages() []int64 {
	return append([]int64(nil), c.sentMessages...)
}

// ReceivedMessages returns a copy of the received-message accumulator.
func (c *Configuration) ReceivedMessages() []int64 {
	return append([]int64(nil), c.receivedMessages...)
}

// Timing carries the run-scheduling constants the harness consumes. The
// core passes these through untouched: it never sleeps, times, or cancels
// anything itself.
type Timing struct {
	// RunDuration is how long the harness drives each run.
	RunDuration time.Duration

	// WarmupIterations is the number of unmeasured runs per configuration.
	WarmupIterations int

	// MeasuredIterations is the number of measured runs per configuration.
	MeasuredIterations int
}

// DefaultTiming returns the reference timing constants.
func DefaultTiming() Timing {
	return Timing{
		RunDuration:        2 * time.Second,
		WarmupIterations:   5,
		MeasuredIterations: 10,
	}
}

// DefaultOutputFile is the fixed relative location the harness appends
// summary rows to. Whether an existing file is appended to or replaced is
// the harness's decision.
const DefaultOutputFile = "results.csv"
