package main

import (
	"os"
	"testing"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"timestamps", "--version"}

	code := run()
	if code != 0 {
		t.Errorf("Expected exit code 0 for --version, got %d", code)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	// Flag errors are usage errors and must not touch the log
	os.Args = []string{"timestamps", "--unknownflag"}

	code := run()
	if code != 2 {
		t.Errorf("Expected exit code 2 for an unknown flag, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	originalExit := exitFunc
	originalArgs := os.Args
	defer func() {
		exitFunc = originalExit
		os.Args = originalArgs
	}()

	os.Args = []string{"timestamps", "--version"}

	exitCode := -1
	exitFunc = func(code int) {
		exitCode = code
	}

	main()

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
}
