// Package system provides host statistics for the monitoring endpoint.
package system

import (
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mergington/activities/internal/models"
)

// GetStats returns host uptime, memory, and load averages. Individual probe
// failures are non-fatal; the corresponding fields stay zero.
func GetStats() *models.SystemStats {
	stats := &models.SystemStats{}

	if uptime, err := host.Uptime(); err == nil {
		stats.HostUptimeSecs = uptime
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		stats.MemoryTotal = memInfo.Total
		stats.MemoryUsed = memInfo.Used
		stats.MemoryAvailable = memInfo.Available
		stats.MemoryPercent = memInfo.UsedPercent
	}

	if loadInfo, err := load.Avg(); err == nil {
		stats.LoadAvg1 = loadInfo.Load1
		stats.LoadAvg5 = loadInfo.Load5
		stats.LoadAvg15 = loadInfo.Load15
	}

	return stats
}
