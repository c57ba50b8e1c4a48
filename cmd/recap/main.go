package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/language"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
)

type options struct {
	configPath string
	lang       string
	count      int
	in         string
	out        string
	scores     bool
	json       bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "recap: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("recap", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "optional YAML config file (summary and languages_file are used)")
	fs.StringVar(&opts.lang, "lang", "", "language of the text (default from config, else english)")
	fs.IntVar(&opts.count, "n", -1, "number of sentences to keep (default from config, else 5)")
	fs.StringVar(&opts.in, "in", "-", "input file path or afs URL, - for stdin")
	fs.StringVar(&opts.out, "out", "", "output file path or afs URL (default stdout)")
	fs.BoolVar(&opts.scores, "scores", false, "print every selected sentence with its position and score")
	fs.BoolVar(&opts.json, "json", false, "print the detailed result as JSON")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.lang != "" {
		cfg.Summary.Language = opts.lang
	}
	if opts.count >= 0 {
		cfg.Summary.SentenceCount = opts.count
	}

	languages, err := language.NewFromFile(cfg.Summary.LanguagesFile)
	if err != nil {
		return err
	}

	fs := afs.New()

	text, err := readInput(ctx, fs, opts.in, stdin)
	if err != nil {
		return err
	}

	result, err := summarizer.New(languages).Rank(text, cfg.Summary.Language, cfg.Summary.SentenceCount)
	if err != nil {
		return err
	}

	output, err := render(result, opts)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(stdout, output)
		return err
	}
	if err := fs.Upload(ctx, opts.out, file.DefaultFileOsMode, strings.NewReader(output)); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	return nil
}

func readInput(ctx context.Context, fs afs.Service, in string, stdin io.Reader) (string, error) {
	if in == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := fs.DownloadWithURL(ctx, in)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", in, err)
	}
	return string(data), nil
}

func render(result summarizer.Result, opts options) (string, error) {
	switch {
	case opts.json:
		if result.Sentences == nil {
			result.Sentences = []summarizer.Ranked{}
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
		return string(data) + "\n", nil

	case opts.scores:
		var b strings.Builder
		if len(result.Sentences) == 0 {
			b.WriteString(result.Summary + "\n")
		}
		for _, s := range result.Sentences {
			fmt.Fprintf(&b, "[%d] %.4f  %s\n", s.Position, s.Score, s.Text)
		}
		fmt.Fprintf(&b, "# %d of %d sentences, %s, %d iterations\n",
			len(result.Sentences), result.Total, result.Language, result.Iterations)
		return b.String(), nil

	default:
		return result.Summary + "\n", nil
	}
}
