package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// defaultFreeSpaceFloor is the minimum free-space ratio doctor tolerates
// before flagging the disk (0.05 => 95% full).
const defaultFreeSpaceFloor = 0.05

// statfsFunc allows tests to stub filesystem stats.
type statfsFunc func(path string) (total uint64, free uint64, err error)

var statfs statfsFunc = realStatfs

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace reports whether the filesystem holding path keeps at least
// floor of its capacity free. Renders write next to the library, so a nearly
// full disk makes the emitted command fail long after compilation succeeded.
func CheckFreeSpace(name, path string, floor float64) Result {
	total, free, err := statfs(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	if total == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: filesystem reports zero capacity)", path)}
	}
	ratio := float64(free) / float64(total)
	detail := fmt.Sprintf("%s (%.1f%% free, %.1f GiB available)", path, ratio*100, float64(free)/(1<<30))
	return Result{Name: name, Passed: ratio >= floor, Detail: detail}
}

func realStatfs(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)
	return total, free, nil
}
