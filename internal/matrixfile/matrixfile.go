// Package matrixfile loads benchmark matrix declarations from disk.
//
// A matrix file declares the allowed values for every benchmark axis as
// plain lists; variant axes use the canonical variant names. Any format
// viper understands works (YAML, TOML, JSON); axes left out of the file
// fall back to the reference values from bench.DefaultMatrix().
//
// Example (YAML):
//
//	threads: [1, 4, 8]
//	userCounts: [10000]
//	maxFriendsPercentages: [0.2]
//	channelTypes: [RENDEZVOUS, BUFFERED_16]
//	averageWork: [40, 80]
//	benchmarkModes: [USER_WITH_FRIENDS, USER_WITHOUT_FRIENDS]
//	dispatcherTypes: [FORK_JOIN, EXPERIMENTAL]
package matrixfile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/nebolax/chatbench/internal/bench"
)

// File is the raw on-disk schema of a matrix declaration. Variant axes are
// plain strings here; ToMatrix performs the strict closed-set parse.
type File struct {
	Threads               []int     `mapstructure:"threads" yaml:"threads"`
	UserCounts            []int     `mapstructure:"userCounts" yaml:"userCounts"`
	MaxFriendsPercentages []float64 `mapstructure:"maxFriendsPercentages" yaml:"maxFriendsPercentages"`
	ChannelTypes          []string  `mapstructure:"channelTypes" yaml:"channelTypes"`
	AverageWork           []int     `mapstructure:"averageWork" yaml:"averageWork"`
	BenchmarkModes        []string  `mapstructure:"benchmarkModes" yaml:"benchmarkModes"`
	DispatcherTypes       []string  `mapstructure:"dispatcherTypes" yaml:"dispatcherTypes"`
}

// Load reads and validates a matrix file. Unknown variant names fail with
// the same *bench.ParseError the record parse path uses; an axis declared
// empty fails validation even though a missing axis falls back to the
// defaults.
func Load(path string) (bench.Matrix, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := FromMatrix(bench.DefaultMatrix())
	v.SetDefault("threads", defaults.Threads)
	v.SetDefault("userCounts", defaults.UserCounts)
	v.SetDefault("maxFriendsPercentages", defaults.MaxFriendsPercentages)
	v.SetDefault("channelTypes", defaults.ChannelTypes)
	v.SetDefault("averageWork", defaults.AverageWork)
	v.SetDefault("benchmarkModes", defaults.BenchmarkModes)
	v.SetDefault("dispatcherTypes", defaults.DispatcherTypes)

	if err := v.ReadInConfig(); err != nil {
		return bench.Matrix{}, fmt.Errorf("read matrix file %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return bench.Matrix{}, fmt.Errorf("decode matrix file %s: %w", path, err)
	}

	m, err := f.ToMatrix()
	if err != nil {
		return bench.Matrix{}, fmt.Errorf("matrix file %s: %w", path, err)
	}
	return m, nil
}

// ToMatrix converts the raw schema into a validated bench.Matrix.
func (f File) ToMatrix() (bench.Matrix, error) {
	m := bench.Matrix{
		Threads:               f.Threads,
		Users:                 f.UserCounts,
		MaxFriendsPercentages: f.MaxFriendsPercentages,
		AverageWorks:          f.AverageWork,
	}

	for _, s := range f.ChannelTypes {
		k, err := bench.ParseChannelKind(s)
		if err != nil {
			return bench.Matrix{}, err
		}
		m.Channels = append(m.Channels, k)
	}
	for _, s := range f.BenchmarkModes {
		md, err := bench.ParseBenchmarkMode(s)
		if err != nil {
			return bench.Matrix{}, err
		}
		m.Modes = append(m.Modes, md)
	}
	for _, s := range f.DispatcherTypes {
		k, err := bench.ParseDispatcherKind(s)
		if err != nil {
			return bench.Matrix{}, err
		}
		m.Dispatchers = append(m.Dispatchers, k)
	}

	if err := m.Validate(); err != nil {
		return bench.Matrix{}, err
	}
	return m, nil
}

// FromMatrix converts a bench.Matrix back into the on-disk schema. Used for
// defaults and for exporting a matrix as YAML.
func FromMatrix(m bench.Matrix) File {
	f := File{
		Threads:               m.Threads,
		UserCounts:            m.Users,
		MaxFriendsPercentages: m.MaxFriendsPercentages,
		AverageWork:           m.AverageWorks,
	}
	for _, k := range m.Channels {
		f.ChannelTypes = append(f.ChannelTypes, k.String())
	}
	for _, md := range m.Modes {
		f.BenchmarkModes = append(f.BenchmarkModes, md.String())
	}
	for _, k := range m.Dispatchers {
		f.DispatcherTypes = append(f.DispatcherTypes, k.String())
	}
	return f
}
