package snapshot

import (
	"crypto/sha256"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Clock is the time source for captures. Production code uses SystemClock;
// tests pin time with testutil.FixedClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Capture populates a host snapshot from the running system.
//
// Every field read is best-effort but deterministic for an unchanged
// system: the env digest hashes the sorted environment, and boot_id is
// absent (not empty) on platforms that do not expose one.
func Capture(clock Clock, name string, tags []string) *Snapshot {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	desc := &HostDescriptor{
		Hostname:      hostname,
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUs:          int64(runtime.NumCPU()),
		Runtime:       runtime.Version(),
		EnvDigest:     envDigest(os.Environ()),
		Containerized: isContainerized(),
		BootID:        readBootID(),
		Tags:          tags,
	}

	return &Snapshot{
		ID:         NewID(),
		Name:       name,
		Kind:       KindHost,
		CapturedAt: clock.Now().UTC(),
		Host:       desc,
	}
}

// envDigest hashes the environment into a fixed-size fingerprint.
// Sorted first: environ order is not specified.
func envDigest(environ []string) []byte {
	sorted := make([]string, len(environ))
	copy(sorted, environ)
	sort.Strings(sorted)

	h := sha256.New()
	for _, kv := range sorted {
		h.Write([]byte(kv))
		h.Write([]byte{0})
	}
	return h.Sum(nil)
}

// isContainerized reports whether the process appears to run in a container.
func isContainerized() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	if _, err := os.Stat("/run/.containerenv"); err == nil {
		return true
	}
	return false
}

// readBootID returns the kernel boot id where the platform exposes one.
// Returns nil (absent) rather than an empty string when unavailable, so the
// field diffs as an optional.
func readBootID() *string {
	raw, err := os.ReadFile("/proc/sys/kernel/random/boot_id")
	if err != nil {
		return nil
	}
	id := strings.TrimSpace(string(raw))
	if id == "" {
		return nil
	}
	return &id
}
