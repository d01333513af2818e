package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	type tc struct {
		name    string
		dir     string
		wantErr bool
	}
	tests := []tc{
		{"simple name", "myapp", false},
		{"relative path", "projects/myapp", false},
		{"dot-slash relative", "./projects/myapp", false},
		{"deep relative", "a/b/c/myapp", false},

		// Dangerous paths (cross-platform)
		{"empty", "", true},
		{"root slash", "/", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}

	if runtime.GOOS == "windows" {
		tests = append(tests,
			tc{"drive root", `C:\`, true},
			tc{"bare backslash root", `\`, true},
			tc{"root-level C:\\Users", `C:\Users`, true},
			tc{"nested windows path", `C:\Users\me\projects\myapp`, false},
		)
	} else {
		tests = append(tests,
			tc{"absolute nested", "/home/user/projects/myapp", false},
			tc{"root-level /etc", "/etc", true},
			tc{"root-level /tmp", "/tmp", true},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDirectory(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDirectory(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"myapp", false},
		{"my-app", false},
		{"my_app", false},
		{"app2", false},
		{"", true},
		{".hidden", true},
		{"-flag", true},
		{"2cool", true},
		{"my app", true},
		{"my/app", true},
	}

	for _, tt := range tests {
		err := validateProjectName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateProjectName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestScaffoldProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myapp")

	if err := scaffoldProject(dir, "myapp", "github.com/example/myapp"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("read go.mod: %v", err)
	}
	if !strings.Contains(string(gomod), "module github.com/example/myapp") {
		t.Errorf("go.mod missing module path:\n%s", gomod)
	}

	maingo, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("read main.go: %v", err)
	}
	if !strings.Contains(string(maingo), "package main") {
		t.Errorf("main.go is not a main package:\n%s", maingo)
	}

	glintyaml, err := os.ReadFile(filepath.Join(dir, "glint.yaml"))
	if err != nil {
		t.Fatalf("read glint.yaml: %v", err)
	}
	if !strings.Contains(string(glintyaml), "name: myapp") {
		t.Errorf("glint.yaml missing project name:\n%s", glintyaml)
	}
}

func TestScaffoldProject_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := scaffoldProject(dir, filepath.Base(dir), "example"); err == nil {
		t.Fatal("expected error for existing directory")
	}
}
