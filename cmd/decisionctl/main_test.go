package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--profile", "local", "--config-dir", "../../configs"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestProposalsPending_EmptyMemoryStore(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "proposals", "pending")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "no pending proposals") {
		t.Errorf("output = %q, want %q", out, "no pending proposals")
	}
}

func TestProposalsSweep_ReportsCount(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "proposals", "sweep")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := strings.TrimSpace(out), "expired 0 proposal(s)"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"up", "version"} {
		_, err := execute(t, "migrate", sub)
		if !errors.Is(err, errNoDatabaseURL) {
			t.Errorf("migrate %s error = %v, want %v", sub, err, errNoDatabaseURL)
		}
	}
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "migrate", "down", "--steps", "0")
	if err == nil || !strings.Contains(err.Error(), "--steps must be >= 1") {
		t.Errorf("error = %v, want steps validation error", err)
	}
}

func TestUnknownProfile_FailsToLoad(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--profile", "staging", "--config-dir", "../../configs", "proposals", "pending"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want config load error")
	}
}
