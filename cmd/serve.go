package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abbrtip/internal/plugin"
	"github.com/ziadkadry99/abbrtip/internal/progress"
	"github.com/ziadkadry99/abbrtip/internal/server"
	"github.com/ziadkadry99/abbrtip/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with live reload",
	Long:  `Builds the site, serves it locally, and rebuilds it whenever a page or the definitions file changes. Open pages reload automatically.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to serve.port)")
	serveCmd.Flags().Bool("open", false, "open the browser after the first build")
	serveCmd.Flags().Bool("no-watch", false, "do not rebuild on file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port := cfg.Serve.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}
	watch := cfg.Serve.Watch
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		watch = false
	}

	// Every build reloads the definitions from disk.
	build := func() (*site.Manifest, error) {
		p, err := plugin.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("loading abbreviations: %w", err)
		}
		gen := newGenerator(cfg, p)
		gen.LiveReload = true
		gen.Reporter = progress.Nop{}
		return gen.Generate()
	}

	srv := server.New(server.Config{
		Port:     port,
		SiteDir:  cfg.SitePath(),
		AllowAll: cfg.Serve.AllowAll,
	}, build)

	m, err := srv.Rebuild()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	fmt.Printf("Site built: %s (%d pages, %d abbreviations, %d tooltip markers)\n",
		cfg.SitePath(), len(m.Pages), len(m.Abbreviations), m.TotalMarkers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		go func() {
			if err := srv.Watch(ctx, []string{cfg.DocsPath(), cfg.DefinitionsPath()}, server.DefaultDebounce); err != nil {
				log.Printf("watch: %v", err)
			}
		}()
		fmt.Printf("Watching %s and %s\n", cfg.DocsDir, cfg.Definitions)
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go server.OpenBrowser(url)
	}
	fmt.Printf("Serving at %s (press Ctrl+C to stop)\n", url)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
