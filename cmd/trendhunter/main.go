package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
	"github.com/serhatramay/trend-hunter-pro/internal/config"
	"github.com/serhatramay/trend-hunter-pro/internal/storage"
	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var prefsStore app.PreferencesStore
	repo, err := storage.NewPrefsRepository(cfg.PrefsDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: preferences storage unavailable (%v), display settings will not persist\n", err)
	} else {
		defer repo.Close()

		initCtx, initCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = repo.Init(initCtx)
		initCancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: preferences schema error (%v), display settings will not persist\n", err)
		} else {
			prefsStore = repo
		}
	}

	client := trendhunter.NewClient(cfg.APIBaseURL, nil)
	service := app.NewService(client, prefsStore)

	model := tui.NewModel(service)
	model.SetPollInterval(cfg.PollInterval)
	model.SetNewsLimit(cfg.NewsLimit)

	prefCtx, prefCancel := context.WithTimeout(context.Background(), 5*time.Second)
	prefs, err := service.LoadPreferences(prefCtx)
	prefCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load preferences (%v), using defaults\n", err)
	} else {
		model.ApplyPreferences(prefs)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
