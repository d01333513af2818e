package templates

import (
	"strings"
	"testing"
)

func TestGetInitFiles(t *testing.T) {
	files, err := GetInitFiles()
	if err != nil {
		t.Fatalf("GetInitFiles failed: %v", err)
	}

	want := map[string]bool{
		"init/go.mod.tmpl":     false,
		"init/main.go.tmpl":    false,
		"init/glint.yaml.tmpl": false,
	}
	for _, f := range files {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, found := range want {
		if !found {
			t.Errorf("expected %s in init templates, got %v", f, files)
		}
	}
}

func TestInitMainTemplate_UsesLifecycle(t *testing.T) {
	content, err := ReadFile("init/main.go.tmpl")
	if err != nil {
		t.Fatalf("ReadFile(init/main.go.tmpl) failed: %v", err)
	}

	src := string(content)
	for _, needle := range []string{"component.New", "store.New", "c.Mount()", "c.Unmount()"} {
		if !strings.Contains(src, needle) {
			t.Errorf("expected %s in starter template", needle)
		}
	}
}
