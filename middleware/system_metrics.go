package middleware

import (
	"strconv"
	"time"

	"frolftracker/metrics"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
)

// UpdateSystemMetrics periodically samples host CPU, disk and load metrics
func UpdateSystemMetrics() {
	go func() {
		for {
			updateCPUMetrics()
			updateDiskMetrics()
			updateLoadMetrics()

			// Wait before next update
			time.Sleep(15 * time.Second)
		}
	}()
}

func updateCPUMetrics() {
	percentages, err := cpu.Percent(0, true)
	if err != nil {
		return
	}
	for core, pct := range percentages {
		metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(core)).Set(pct)
	}
}

func updateDiskMetrics() {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return
	}
	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			continue
		}
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "total").Set(float64(usage.Total))
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "used").Set(float64(usage.Used))
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "free").Set(float64(usage.Free))
	}
}

func updateLoadMetrics() {
	avg, err := load.Avg()
	if err != nil {
		return
	}
	metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
	metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
	metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
}
