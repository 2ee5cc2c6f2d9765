//go:build windows

package ftdrives

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

var getLogicalDriveStrings = windows.GetLogicalDriveStrings

type logicalDriveSource struct{}

func newPlatformSource() MountSource {
	return logicalDriveSource{}
}

func (logicalDriveSource) Mounts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf := make([]uint16, 254)
	n, err := getLogicalDriveStrings(uint32(len(buf)), &buf[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read windows drives: %w", err)
	}
	return splitNull(buf[:n]), nil
}
