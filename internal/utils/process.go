package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/enough/internal/constants"
)

// Overridden in tests.
var listProcesses = ps.Processes

// OtherInstances returns the PIDs of other running enough processes. Two
// processes writing the same store would overwrite each other's blobs.
func OtherInstances() ([]int, error) {
	procs, err := listProcesses()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p == nil || p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
