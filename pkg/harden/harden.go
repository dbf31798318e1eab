package harden

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps prevents decoded plaintext from reaching disk via a
// core file. It combines prctl PR_SET_DUMPABLE, RLIMIT_CORE, and
// coredump_filter so no memory contents are written on a crash.
func DisableCoreDumps() error {
	// PR_SET_DUMPABLE = 0 also restricts /proc/pid/mem access from
	// other processes.
	if err := unix.Prctl(unix.PR_SET_DUMPABLE, 0, 0, 0, 0); err != nil {
		return fmt.Errorf("harden: failed to set PR_SET_DUMPABLE: %w", err)
	}

	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("harden: failed to set RLIMIT_CORE to 0: %w", err)
	}

	// Disable dumping of all memory segment types. Non-fatal: the file
	// may not be writable in all contexts.
	if err := os.WriteFile("/proc/self/coredump_filter", []byte("0"), 0); err != nil {
		_ = err
	}

	return nil
}

// LockMemory pins all current and future pages in RAM so decoded
// literals never land in swap space or hibernation files. May fail
// under RLIMIT_MEMLOCK for unprivileged processes.
func LockMemory() error {
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		return fmt.Errorf("harden: mlockall failed: %w", err)
	}
	return nil
}

// Protect applies every hardening step, best effort, and returns the
// first error encountered. Callers that can tolerate partial hardening
// (e.g. LockMemory failing under a memlock limit) can ignore the error.
func Protect() error {
	var firstErr error
	if err := DisableCoreDumps(); err != nil {
		firstErr = err
	}
	if err := LockMemory(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
