package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"montage/internal/testsupport"
)

func TestDoctorAllChecksPass(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "FFprobe")
	requireContains(t, out, "Library directory")
	requireContains(t, out, "OK")
	requireNotContains(t, out, "FAIL")
}

func TestDoctorReportsMissingEngine(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Engine.Program = "montage-missing-engine"
	broken := filepath.Join(env.baseDir, "broken.toml")
	writeTestConfig(t, broken, env.cfg)

	out, _, err := runCLI(t, []string{"doctor"}, broken)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, err.Error(), "checks failed")
	requireContains(t, out, "FAIL")
	requireContains(t, out, `binary "montage-missing-engine" not found`)
}

func TestDoctorJSONDocument(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, _, err := runCLI(t, []string{"doctor", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor --json: %v", err)
	}

	var rows []doctorRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected at least one check row")
	}
	for _, row := range rows {
		if !row.Passed {
			t.Fatalf("expected %s to pass: %s", row.Name, row.Detail)
		}
	}
}
