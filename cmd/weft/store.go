package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/logger"
)

func customizationPath() string {
	if p := viper.GetString("customization"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "customization.yaml"
	}
	return filepath.Join(home, ".weft", "customization.yaml")
}

func promptsDir() string {
	if p := viper.GetString("prompts_dir"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "system_prompts"
	}
	return filepath.Join(home, ".weft", "system_prompts")
}

// openStore loads the compiled-in document, the user customization file
// if present, and any markdown prompt overlays, and merges them into a
// live store.
func openStore(ctx context.Context) (*config.Store, error) {
	compiled, err := config.Builtin()
	if err != nil {
		return nil, err
	}
	user, err := loadUserDocument(ctx)
	if err != nil {
		return nil, err
	}
	return config.NewStore(compiled, user)
}

func loadUserDocument(ctx context.Context) (*config.Document, error) {
	user := config.NewDocument()

	path := customizationPath()
	if _, err := os.Stat(path); err == nil {
		user, err = config.ReadDocument(path)
		if err != nil {
			return nil, err
		}
		logger.G(ctx).WithField("path", path).Debug("loaded user customization")
	}

	overlays, err := config.LoadPromptDir(promptsDir())
	if err != nil {
		return nil, err
	}
	for id, entry := range overlays {
		user.SetPrompt(id, entry)
	}
	return user, nil
}
