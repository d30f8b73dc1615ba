// Package performance samples process and system resource usage for
// benchmark reports.
package performance

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// ResourceMonitor monitors the current process
type ResourceMonitor struct {
	process      *process.Process
	startCPUTime float64
	startTime    time.Time
	mu           sync.RWMutex
}

// NewResourceMonitor creates a resource monitor for the current process
func NewResourceMonitor() (*ResourceMonitor, error) {
	proc, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // pids fit in int32
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeResource, "open process")
	}
	rm := &ResourceMonitor{
		process:   proc,
		startTime: time.Now(),
	}
	if cpuTime, err := proc.Times(); err == nil {
		rm.startCPUTime = cpuTime.Total()
	}
	return rm, nil
}

// Usage returns current resource usage. Fields the platform cannot report
// are left zero; only a failure to read RSS is an error.
func (rm *ResourceMonitor) Usage() (ResourceUsage, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var usage ResourceUsage

	memInfo, err := rm.process.MemoryInfo()
	if err != nil {
		return usage, errors.Wrap(err, errors.ErrorTypeResource, "read process memory")
	}
	usage.MemoryRSS = memInfo.RSS
	usage.MemoryVMS = memInfo.VMS

	if cpuTime, err := rm.process.Times(); err == nil {
		if elapsed := time.Since(rm.startTime).Seconds(); elapsed > 0 {
			usage.CPUPercent = ((cpuTime.Total() - rm.startCPUTime) / elapsed) * 100
		}
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemoryPercent = vmStat.UsedPercent
		usage.SystemMemoryAvailable = vmStat.Available
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	usage.HeapAlloc = memStats.HeapAlloc
	usage.GoroutineCount = runtime.NumGoroutine()

	return usage, nil
}

// ResourceUsage contains resource usage information
type ResourceUsage struct {
	CPUPercent            float64
	MemoryRSS             uint64
	MemoryVMS             uint64
	HeapAlloc             uint64
	SystemMemoryPercent   float64
	SystemMemoryAvailable uint64
	GoroutineCount        int
}

// RSSDelta returns after.MemoryRSS - before.MemoryRSS as a signed value
func RSSDelta(before, after ResourceUsage) int64 {
	return int64(after.MemoryRSS) - int64(before.MemoryRSS) //nolint:gosec // RSS fits in int64
}
