package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kainoa/surftrack/internal/tui"
	"github.com/kainoa/surftrack/pkg/client"
)

func main() {
	baseURL := os.Getenv("SURFTRACK_API_URL")

	opts := []client.Option{}
	if token := os.Getenv("SURFTRACK_TOKEN"); token != "" {
		opts = append(opts, client.WithToken(token))
	}
	c := client.New(baseURL, opts...)

	p := tea.NewProgram(tui.NewModel(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
