package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/cronies/chain"
	"github.com/hasbyte1/cronies/config"
	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/logging"
)

type runOptions struct {
	input   string
	output  string
	at      string
	digest  bool
	history bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [steps...]",
		Short: "Run a pipeline of steps over a document",
		Long: `Run decodes a JSON or YAML document, applies each step in order and
prints the result. A step is written name[:arg][@keys]; keys restrict the
step to the listed indexes or names.

Steps:
  flatten, unique[@keys], min, max, round[:dp][@keys], fixed[:dp][@keys],
  comma[@keys], negatives[@keys], positives[@keys], numbers[@keys],
  falsey[@keys], chars:CHARS[@keys], date[:PATTERN][@keys],
  merge:FILE, overwrite:FILE, backtrack

Examples:
  # Dedupe and round a list
  echo '[1.005, 3, 3, 2.675]' | cronies run unique round:2

  # Format the dates of one field of a YAML file
  cronies run --input events.yaml --at events date:dd/MM/YYYY`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runPipeline(cmd, path, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input document, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: json or yaml (default from config)")
	cmd.Flags().StringVar(&opts.at, "at", "", "dot path of the value to transform")
	cmd.Flags().BoolVar(&opts.digest, "digest", false, "print the BLAKE2b-256 digest of the result to stderr")
	cmd.Flags().BoolVar(&opts.history, "history", false, "print the result together with every intermediate value")
	return cmd
}

func runPipeline(cmd *cobra.Command, configPath string, args []string, opts runOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output.Format = opts.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	steps, err := ParseSteps(args)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	target := doc
	if opts.at != "" {
		if !data.Has(doc, opts.at) {
			return fmt.Errorf("path %q not found in input", opts.at)
		}
		target = data.Get(doc, opts.at)
	}

	p := &pipeline{cfg: cfg, load: loadDocument}
	w := chain.Wrap(target, append(cfg.ChainOptions(), chain.WithLogger(logger))...)
	for _, s := range steps {
		logger.Debug("applying step", zap.Stringer("step", s))
		if w, err = p.apply(w, s); err != nil {
			return err
		}
		if err := w.Err(); err != nil {
			return fmt.Errorf("step %s: %w", s, err)
		}
	}

	result := w.Data()
	if opts.at != "" {
		if err := data.Set(doc, opts.at, result); err != nil {
			return err
		}
		result = doc
	}

	if opts.digest {
		sum, err := data.Digest(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "blake2b-256 %s\n", sum)
	}

	if opts.history {
		out := data.NewMap(2)
		out.Set("result", result)
		out.Set("history", w.History())
		result = out
	}
	return encode(cmd.OutOrStdout(), result, cfg.Output.Format)
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return b, nil
}

// decodeDocument decodes JSON when the document opens with a bracket or
// brace and YAML otherwise.
func decodeDocument(b []byte) (any, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return data.DecodeJSON(trimmed)
	}
	return data.DecodeYAML(b)
}

func loadDocument(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDocument(b)
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(finiteJSON(v))
	}
}

// finiteJSON replaces NaN and infinities, which JSON cannot represent, with
// the strings "NaN", "+Inf" and "-Inf". Containers holding them are copied.
func finiteJSON(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'g', -1, 64)
		}
	case float32:
		if f := float64(t); math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = finiteJSON(item)
		}
		return out
	case *data.Map:
		if t == nil {
			return v
		}
		out := data.NewMap(t.Len())
		t.Each(func(k string, item any) { out.Set(k, finiteJSON(item)) })
		return out
	}
	return v
}
