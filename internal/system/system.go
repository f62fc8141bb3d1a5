// Package system probes the host to size concurrent rendering work.
package system

import (
	"log"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	probeOnce  sync.Once
	probedCPUs int
	memTight   bool
)

func probe() {
	probedCPUs = runtime.NumCPU()
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		probedCPUs = n
	} else if err != nil {
		log.Printf("[!] cpu probe failed, using runtime count: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		// Layers buffer decoded frames; back off when memory is already tight.
		memTight = vm.UsedPercent > 90
	}
}

// WorkerCount picks a concurrency bound for rendering independent layers.
// It never exceeds the job count and never drops below one.
func WorkerCount(jobs int) int {
	probeOnce.Do(probe)

	n := probedCPUs
	if memTight && n > 1 {
		n = n / 2
	}
	if jobs > 0 && n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}
