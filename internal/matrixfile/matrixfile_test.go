package matrixfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nebolax/chatbench/internal/bench"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "matrix.yaml", `
threads: [1, 4, 8]
userCounts: [500]
maxFriendsPercentages: [0.1, 0.25]
channelTypes: [RENDEZVOUS, BUFFERED_16]
averageWork: [40]
benchmarkModes: [USER_WITHOUT_FRIENDS]
dispatcherTypes: [FORK_JOIN, EXPERIMENTAL]
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(m.Threads) != 3 || m.Threads[2] != 8 {
		t.Errorf("Threads = %v", m.Threads)
	}
	if len(m.Users) != 1 || m.Users[0] != 500 {
		t.Errorf("Users = %v", m.Users)
	}
	if len(m.Channels) != 2 || m.Channels[1] != bench.ChannelBuffered16 {
		t.Errorf("Channels = %v", m.Channels)
	}
	if len(m.Modes) != 1 || m.Modes[0] != bench.ModeUserWithoutFriends {
		t.Errorf("Modes = %v", m.Modes)
	}
	if m.Size() != 3*1*2*2*1*1*2 {
		t.Errorf("Size() = %d", m.Size())
	}
}

func TestLoadFillsMissingAxesFromDefaults(t *testing.T) {
	path := writeFile(t, "matrix.yaml", `
threads: [2]
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(m.Threads) != 1 || m.Threads[0] != 2 {
		t.Errorf("Threads = %v", m.Threads)
	}
	defaults := bench.DefaultMatrix()
	if len(m.Channels) != len(defaults.Channels) {
		t.Errorf("Channels = %v, want defaults %v", m.Channels, defaults.Channels)
	}
	if len(m.Users) != len(defaults.Users) {
		t.Errorf("Users = %v, want defaults %v", m.Users, defaults.Users)
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	path := writeFile(t, "matrix.yaml", `
channelTypes: [BUFFERED_999]
`)

	_, err := Load(path)
	var parseErr *bench.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load = %v, want *bench.ParseError", err)
	}
}

func TestLoadInvalidAxisValue(t *testing.T) {
	path := writeFile(t, "matrix.yaml", `
threads: [0]
`)

	_, err := Load(path)
	if !errors.Is(err, bench.ErrInvalidAxisValue) {
		t.Fatalf("Load = %v, want ErrInvalidAxisValue", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load of a missing file must fail")
	}
}

func TestRoundTripThroughFileSchema(t *testing.T) {
	m := bench.DefaultMatrix()
	back, err := FromMatrix(m).ToMatrix()
	if err != nil {
		t.Fatalf("ToMatrix failed: %v", err)
	}
	if back.Size() != m.Size() {
		t.Errorf("round trip changed size: %d -> %d", m.Size(), back.Size())
	}
}
