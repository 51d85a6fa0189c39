/*
Package main implements the prolixo command line application.

Prolixo reads Portuguese text, finds the complex words in it, and suggests
simpler synonyms for them. A word is complex when its syllable count reaches
a configurable threshold; syllables are derived from spelling alone, so no
dictionary files are needed. Synonym suggestions come from an online synonym
dictionary and are looked up politely, one paced request at a time, with
results cached on disk between runs.

# Usage

Analyze a text file with default settings:

	prolixo texto.txt

Only report words with five or more syllables, as JSON:

	prolixo -m 5 -format json texto.txt

Skip the synonym lookups entirely (offline mode):

	prolixo -no-synonyms texto.txt

Page through a large result set:

	prolixo -limit 20 -offset 20 texto.txt

Run in interactive mode to inspect syllable divisions and cached synonyms:

	prolixo -c

# Configuration

Runtime defaults live in a TOML file that is created on first run:

	[analysis]
	min_syllables = 3
	find_synonyms = true

	[resolver]
	min_interval_ms = 1000
	max_retries = 2
	per_word_timeout_ms = 10000
	max_synonyms = 5
	fallback_url = "https://www.dicio.com.br"

	[cache]
	enabled = true
	max_entries = 4096

Flags override the file; the file overrides the builtin defaults. A config
file with a bad value fails fast before any text is processed.

# Command Line Flags

	-m int
	    Minimum syllable count for a word to be reported
	-format string
	    Output format: table, json or csv
	-o string
	    Write results to a file instead of stdout
	-limit int
	    Maximum number of words to show (0 for all)
	-offset int
	    Number of ranked words to skip before showing results
	-stopwords string
	    Extra stopword list file, one word per line
	-no-synonyms
	    Skip synonym lookups
	-no-cache
	    Ignore the on-disk synonym cache for this run
	-config string
	    Custom config file path
	-c  Run interactive mode instead of analyzing a file
	-d  Enable debug mode with detailed logging

All diagnostics go to stderr; stdout carries only the rendered results, so
output can be piped or redirected safely.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/cli"
	"github.com/gmarquesn/prolixo/internal/utils"
	"github.com/gmarquesn/prolixo/pkg/analyze"
	"github.com/gmarquesn/prolixo/pkg/config"
	"github.com/gmarquesn/prolixo/pkg/output"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"github.com/gmarquesn/prolixo/pkg/syncache"
	"github.com/gmarquesn/prolixo/pkg/synonym"
	"github.com/gmarquesn/prolixo/pkg/texttoken"
)

const (
	Version = "0.3.0"
	AppName = "prolixo"
	gh      = "https://github.com/gmarquesn/prolixo"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the pipeline together and manages the flow. The packages own
// the logic; main() only decides what runs and in which mode.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive mode -- useful for testing and debugging")
	minSyllables := flag.Int("m", defaultConfig.Analysis.MinSyllables, "Minimum syllable count for a word to be reported")
	format := flag.String("format", defaultConfig.CLI.DefaultFormat, "Output format: table, json or csv")
	outFile := flag.String("o", "", "Write results to a file instead of stdout")
	limit := flag.Int("limit", defaultConfig.Analysis.Limit, "Maximum number of words to show (0 for all)")
	offset := flag.Int("offset", defaultConfig.Analysis.Offset, "Number of ranked words to skip")
	stopwordsFile := flag.String("stopwords", "", "Extra stopword list file, one word per line")
	noSynonyms := flag.Bool("no-synonyms", false, "Skip synonym lookups")
	noCache := flag.Bool("no-cache", false, "Ignore the on-disk synonym cache for this run")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: (%s)", config.GetActiveConfigPath(activePath))

	// Flags win over the config file, but only when actually given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			appConfig.Analysis.MinSyllables = *minSyllables
		case "limit":
			appConfig.Analysis.Limit = *limit
		case "offset":
			appConfig.Analysis.Offset = *offset
		case "format":
			appConfig.CLI.DefaultFormat = *format
		}
	})
	if *noSynonyms {
		appConfig.Analysis.FindSynonyms = false
	}
	if *noCache {
		appConfig.Cache.Enabled = false
	}

	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	outputFormat, err := output.ParseFormat(appConfig.CLI.DefaultFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	counter := syllable.NewCounter()
	tokenizer := texttoken.New()
	if *stopwordsFile != "" {
		if err := tokenizer.LoadStopwords(*stopwordsFile); err != nil {
			log.Fatalf("Cannot read stopword file: %v", err)
		}
	}

	var cache *syncache.Cache
	if appConfig.Cache.Enabled {
		pathResolver, err := utils.NewPathResolver()
		if err != nil {
			log.Warnf("Cache disabled, no usable cache dir: %v", err)
		} else if cachePath := pathResolver.GetCachePath(appConfig.Cache.FileName); cachePath != "" {
			cache = syncache.Open(cachePath, appConfig.Cache.MaxEntries)
			log.Debugf("Synonym cache at: (%s), %d entries", cachePath, cache.Len())
		}
	}

	var resolver *synonym.Resolver
	if appConfig.Analysis.FindSynonyms {
		resolver, err = newResolver(appConfig, counter, cache, *debugMode)
		if err != nil {
			log.Fatalf("Failed to init synonym resolver: %v", err)
		}
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(resolver, cache)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", AppName)
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	text, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Cannot read input file: %v", err)
	}

	analyzer := analyze.New(tokenizer, counter, resolverOrNil(resolver))
	report, err := analyzer.Analyze(context.Background(), string(text), analyze.Options{
		MinSyllables: appConfig.Analysis.MinSyllables,
		Offset:       appConfig.Analysis.Offset,
		Limit:        appConfig.Analysis.Limit,
		FindSynonyms: appConfig.Analysis.FindSynonyms,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if cache != nil {
		if err := cache.Save(); err != nil {
			log.Warnf("Could not persist synonym cache: %v", err)
		}
	}

	renderer := output.NewRenderer(counter)
	if *outFile != "" {
		if err := renderer.SaveFile(report, outputFormat, *outFile); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}
	rendered, err := renderer.Render(report, outputFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(rendered)
	if outputFormat == output.FormatTable {
		fmt.Println(renderer.Summary(report))
	}
}

// newResolver builds the paced web resolver from config. In debug mode a
// progress callback reports each finished lookup.
func newResolver(cfg *config.Config, counter *syllable.Counter, cache *syncache.Cache, debug bool) (*synonym.Resolver, error) {
	opts := synonym.Options{
		MinInterval:    msDuration(cfg.Resolver.MinIntervalMs),
		MaxRetries:     cfg.Resolver.MaxRetries,
		PerWordTimeout: msDuration(cfg.Resolver.PerWordTimeoutMs),
		MaxSynonyms:    cfg.Resolver.MaxSynonyms,
	}
	if debug {
		opts.Progress = func(done, total int) {
			log.Debugf("Synonym lookups: %d/%d", done, total)
		}
	} else {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rLooking up synonyms... %d/%d", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	source := synonym.NewWebSourceURL(cfg.Resolver.BaseURL)
	// A nil *syncache.Cache must stay a nil interface value.
	var store synonym.Cache
	if cache != nil {
		store = cache
	}
	// Second dictionary site consulted when the first has nothing usable.
	// An empty fallback_url runs single-source.
	if cfg.Resolver.FallbackURL != "" {
		fallback := synonym.NewDicioSourceURL(cfg.Resolver.FallbackURL)
		return synonym.NewResolver(source, counter, store, opts, fallback)
	}
	return synonym.NewResolver(source, counter, store, opts)
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// resolverOrNil avoids handing the analyzer a typed nil.
func resolverOrNil(r *synonym.Resolver) analyze.Resolver {
	if r == nil {
		return nil
	}
	return r
}

func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Prolixo ] Finds complex words, suggests simpler ones!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
