package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/avelok/stint/internal/config"
	"github.com/avelok/stint/internal/database"
	"github.com/avelok/stint/internal/tui"
	"github.com/avelok/stint/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stint is interactive; run it from a terminal")
		os.Exit(1)
	}

	root := util.DataDir(config.AppName)
	util.MustSucceed("create data dir", os.MkdirAll(root, 0o755))

	db, err := database.Open(dbPath(root))
	util.MustSucceed("open database", err)
	defer db.Close()

	model := tui.NewMainModel(db)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func dbPath(root string) string {
	return filepath.Join(root, config.DBFileName)
}
