package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, modulePath, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module " + modulePath + "\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "glint.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolve_Defaults(t *testing.T) {
	dir := writeProject(t, "github.com/acme/shopfront", "")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ModulePath != "github.com/acme/shopfront" {
		t.Errorf("module path = %q", resolved.ModulePath)
	}
	if resolved.AppName != "shopfront" {
		t.Errorf("expected app name from module path, got %q", resolved.AppName)
	}
	if resolved.AppID != "com.github.acme.shopfront" {
		t.Errorf("expected reverse-DNS app id, got %q", resolved.AppID)
	}
	if resolved.IconsSource != filepath.Join("assets", "icon.png") {
		t.Errorf("icons source = %q", resolved.IconsSource)
	}
	if resolved.IconsOutput != filepath.Join("public", "icons") {
		t.Errorf("icons output = %q", resolved.IconsOutput)
	}
}

func TestResolve_YAMLOverrides(t *testing.T) {
	dir := writeProject(t, "github.com/acme/shopfront", `
app:
  name: Shop Front
  id: com.acme.shop
icons:
  source: art/master.png
  output: dist/icons
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.AppName != "Shop Front" {
		t.Errorf("app name = %q", resolved.AppName)
	}
	if resolved.AppID != "com.acme.shop" {
		t.Errorf("app id = %q", resolved.AppID)
	}
	if resolved.IconsSource != "art/master.png" {
		t.Errorf("icons source = %q", resolved.IconsSource)
	}
	if resolved.IconsOutput != "dist/icons" {
		t.Errorf("icons output = %q", resolved.IconsOutput)
	}
}

func TestResolve_NoDomainModulePath(t *testing.T) {
	dir := writeProject(t, "shopfront", "")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.AppID != "com.example.shopfront" {
		t.Errorf("expected com.example fallback, got %q", resolved.AppID)
	}
}

func TestResolve_InvalidAppID(t *testing.T) {
	dir := writeProject(t, "github.com/acme/shopfront", "app:\n  id: noseparator\n")

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected error for app.id without a dot")
	}
}

func TestResolve_MalformedYAML(t *testing.T) {
	dir := writeProject(t, "github.com/acme/shopfront", "app: [unclosed\n")

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected error for malformed glint.yaml")
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing glint.yaml to be optional, got %v", err)
	}
	if cfg.App.Name != "" || cfg.App.ID != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestValidateAppID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"com.acme.shop", false},
		{"com.acme.shop_front", false},
		{"noseparator", true},
		{"com..shop", true},
		{"com.9acme.shop", true},
		{"com._acme.shop", true},
		{"com.Acme.shop", true},
	}
	for _, tt := range tests {
		err := validateAppID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateAppID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}
