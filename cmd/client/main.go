package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/greengarden/greengarden-server/internal/client/api"
	"github.com/greengarden/greengarden-server/internal/client/screen"
	"github.com/greengarden/greengarden-server/internal/client/state"
	"github.com/greengarden/greengarden-server/internal/config"
	"github.com/greengarden/greengarden-server/internal/logger"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
)

const usage = `usage: greengarden <command> [flags]

commands:
  signup   -username -email -password
  login    -email -password
  logout
  me
  plants   list|watch [-category] [-search]
  plants   add -name [-description] [-category] [-image]
  plants   edit -id [-name] [-description] [-category] [-image] [-remove-image]
  plants   delete -id
  profile  edit [-username] [-email] [-password] [-image] [-remove-image]
  profile  delete
  version
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if os.Args[1] == "version" {
		fmt.Printf("Green Garden client\nVersion: %s\nBuild Date: %s\n", buildVersion, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewClientConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stderr, cfg.LogLevel, "text")

	client, err := api.Dial(*cfg, api.NewFileSessionStore(cfg.SessionFile), logger)
	if err != nil {
		logger.Fatal("failed to connect", "error", err)
	}
	defer client.Close()

	a := &app{
		client: client,
		deps: screen.Deps{
			Plants:   client,
			Profile:  client,
			Loader:   state.NewLoader(),
			Session:  state.NewSession(),
			Notifier: terminalNotifier{out: os.Stdout},
			Reader:   fileReader{},
			Logger:   logger,
		},
		out: os.Stdout,
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
