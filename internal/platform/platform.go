// Package platform identifies the host the executor is running on.
//
// The script Platform (windows/unix) drives variant resolution; HostInfo
// carries the richer OS details shown in validation summaries and run logs
// (distribution, kernel, architecture).
package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/davidhurst/scriptbox/internal/script"
)

// HostInfo describes the host for display and logging.
type HostInfo struct {
	// OS is the operating system name (linux, darwin, windows).
	OS string `json:"os"`

	// Platform is the distribution name (ubuntu, debian, alpine) or the
	// Windows product name.
	Platform string `json:"platform"`

	// PlatformVersion is the distribution/product version.
	PlatformVersion string `json:"platformVersion"`

	// KernelVersion is the kernel version string.
	KernelVersion string `json:"kernelVersion"`

	// Arch is the Go architecture of this binary (amd64, arm64).
	Arch string `json:"arch"`

	// Hostname is the system hostname.
	Hostname string `json:"hostname"`
}

// Current returns the script Platform of this host. Everything that is not
// Windows resolves Unix-flavored variants.
func Current() script.Platform {
	if runtime.GOOS == "windows" {
		return script.PlatformWindows
	}
	return script.PlatformUnix
}

// Info gathers host details. Fields that cannot be collected are left
// empty rather than failing the whole call; OS and Arch are always set.
func Info(ctx context.Context) (*HostInfo, error) {
	info := &HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	hostInfo, err := host.InfoWithContext(ctx)
	if err == nil {
		info.Platform = hostInfo.Platform
		info.PlatformVersion = hostInfo.PlatformVersion
		info.KernelVersion = hostInfo.KernelVersion
		info.Hostname = hostInfo.Hostname
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return info, nil
}
