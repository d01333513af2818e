package cmd

import (
	"fmt"

	"github.com/glintui/glint/cmd/glint/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved project configuration",
		Long: `Show the resolved configuration of the Glint project.

Displays the values glint commands will use: the module path, the app
name and manifest id, and the icon pipeline paths. Values come from
glint.yaml where set and are derived from go.mod otherwise.`,
		Usage: "glint info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project root:  %s\n", cfg.Root)
	fmt.Printf("Module path:   %s\n", cfg.ModulePath)
	fmt.Printf("App name:      %s\n", cfg.AppName)
	fmt.Printf("App id:        %s\n", cfg.AppID)
	fmt.Printf("Icons source:  %s\n", cfg.IconsSource)
	fmt.Printf("Icons output:  %s\n", cfg.IconsOutput)
	return nil
}
