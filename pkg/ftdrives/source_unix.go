//go:build !windows

package ftdrives

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
)

var diskPartitions = disk.PartitionsWithContext

type partitionSource struct{}

func newPlatformSource() MountSource {
	return partitionSource{}
}

// Mounts returns mount points of physical partitions as reported by the OS.
func (partitionSource) Mounts(ctx context.Context) ([]string, error) {
	partitions, err := diskPartitions(ctx, false)
	if err != nil {
		return nil, err
	}
	mounts := make([]string, 0, len(partitions))
	for _, p := range partitions {
		mounts = append(mounts, p.Mountpoint)
	}
	return mounts, nil
}
