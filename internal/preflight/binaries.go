package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"montage/internal/config"
)

// Requirement defines an external binary a rendered command invokes.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Result converts a binary status into a doctor row. Missing optional
// binaries pass with an annotation rather than failing the run.
func (s Status) Result() Result {
	detail := s.Detail
	if detail == "" {
		detail = s.Command
	}
	passed := s.Available
	if !passed && s.Optional {
		passed = true
		detail += " (optional)"
	}
	return Result{Name: s.Name, Passed: passed, Detail: detail}
}

// EngineRequirements lists the binaries the emitted command line needs at
// run time. FFprobe is optional: compilation and rendering work without it,
// it only backs source inspection.
func EngineRequirements(cfg *config.Config) []Requirement {
	program := "ffmpeg"
	if cfg != nil && strings.TrimSpace(cfg.Engine.Program) != "" {
		program = strings.TrimSpace(cfg.Engine.Program)
	}
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     program,
			Description: "Runs the rendered filter graph",
		},
		{
			Name:        "FFprobe",
			Command:     ResolveProbePath(program),
			Description: "Inspects source media",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// ResolveProbePath reports the ffprobe binary matching the configured engine.
//
// FFmpeg installs ship ffprobe next to ffmpeg, so when the engine program
// resolves, a sibling ffprobe is preferred over whatever PATH finds first.
// Falls back to plain "ffprobe".
func ResolveProbePath(program string) string {
	program = strings.TrimSpace(program)
	if program != "" {
		if resolved, err := exec.LookPath(program); err == nil {
			candidate := filepath.Join(filepath.Dir(resolved), probeName())
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				return candidate
			}
		}
	}
	return "ffprobe"
}

func probeName() string {
	if runtime.GOOS == "windows" {
		return "ffprobe.exe"
	}
	return "ffprobe"
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
