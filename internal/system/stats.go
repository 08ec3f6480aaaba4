package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// DefaultWorkers sizes the render pool by physical core count. Logical
// (hyperthreaded) siblings buy little for the memory-bound resampling work.
func DefaultWorkers() int {
	count, err := cpu.Counts(false)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}

// ProcessRSS returns the resident set size of this process in bytes, or 0
// when the platform does not expose it.
func ProcessRSS() uint64 {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	mem, err := proc.MemoryInfo()
	if err != nil || mem == nil {
		return 0
	}
	return mem.RSS
}

// FormatBytes renders a byte count as a human-readable MiB string.
func FormatBytes(b uint64) string {
	return fmt.Sprintf("%.1f MiB", float64(b)/(1024*1024))
}
