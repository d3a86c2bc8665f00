package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/annotate"
	"github.com/iw2rmb/annotate/internal/config"
	"github.com/iw2rmb/annotate/internal/logging"
	"github.com/iw2rmb/annotate/markdown"
	"github.com/iw2rmb/annotate/markup"
)

var defaultSeed = strings.Join([]string{
	"Select text with shift+arrows or the mouse,",
	"then press ctrl+b for bold or ctrl+t for italic.",
	"ctrl+x clears formatting, ctrl+q quits.",
}, "\n")

type options struct {
	configPath   string
	markdownPath string
	printOnly    bool
	version      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("annotate-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&opts.markdownPath, "markdown", "", "seed text and formatting from a markdown file")
	fs.BoolVar(&opts.printOnly, "print", false, "print the seed markup and exit")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func loadSeed(path string) (markdown.Document, error) {
	if path == "" {
		return markdown.Document{Text: defaultSeed}, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return markdown.Document{}, fmt.Errorf("read markdown: %w", err)
	}
	doc, err := markdown.Parse(src)
	if err != nil {
		return markdown.Document{}, fmt.Errorf("parse markdown %s: %w", path, err)
	}
	return doc, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.version {
		_, err := fmt.Fprintln(stdout, annotate.VersionTag())
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed, err := loadSeed(opts.markdownPath)
	if err != nil {
		return err
	}

	if opts.printOnly {
		s := seed.Store()
		r := markup.Renderer{Escape: cfg.Render.Escape}
		_, err := fmt.Fprintln(stdout, r.Render(s.Text(), s.Ranges()))
		return err
	}

	log.Info().Str("version", annotate.Version()).Int("ranges", len(seed.Ranges)).Msg("starting annotate-demo")
	p := tea.NewProgram(newModel(cfg, seed), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
