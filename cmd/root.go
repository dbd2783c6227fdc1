package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colin-opt/colin-adapter/colin"
	"github.com/colin-opt/colin-adapter/colin/trace"
)

// stdioPath selects stdin (input) or stdout (output) instead of a file.
const stdioPath = "-"

// rootCmd answers a single COLIN request document.
var rootCmd = newRootCmd()

// newRootCmd builds the root command with its own flag set.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colin-adapter <input> <output> [log]",
		Short: "Answer a COLIN application request with a ColinResponse document",
		Long: "Reads an XML request (a Domain point and the requested outputs), evaluates the test function " +
			"and writes a ColinResponse XML document. The optional log path receives the adapter's log output. " +
			"Use - for stdin/stdout.",
		Args: cobra.RangeArgs(2, 3),
		// Argument errors and usage are reported by executeCommand on the error writer
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 3 {
				closeLog, err := setupLogFile(args[2], cmd.ErrOrStderr())
				if err != nil {
					logrus.Fatalf("Failed to open log file %s: %v", args[2], err)
				}
				defer closeLog()
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				logrus.Fatalf("Invalid configuration: %v", err)
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
			}
			logrus.SetLevel(level)

			runID := uuid.NewString()
			if err := run(args[0], args[1], cfg, runID); err != nil {
				logrus.WithField("run", runID).Fatalf("Request failed: %v", err)
			}
		},
	}

	cmd.Flags().String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().String("config", "", "Path to YAML config file (objective weights, input size limit)")
	cmd.Flags().String("objective-mode", string(colin.ObjectiveSum), "Objective combination: sum or last-term")
	return cmd
}

// resolveConfig loads the --config file, if any, and applies flag overrides.
// Explicitly set flags win over the file; --log also fills an unset log_level.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	flags := cmd.Flags()
	cfg := &Config{}
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.Changed("log") || cfg.LogLevel == "" {
		cfg.LogLevel, _ = flags.GetString("log")
	}
	if flags.Changed("objective-mode") {
		cfg.Objective.Mode, _ = flags.GetString("objective-mode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile sends logrus output to the file at path (appending) and echoes
// error-level and worse entries to stderr so failures stay visible to the caller.
func setupLogFile(path string, stderr io.Writer) (func(), error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(logFile)
	logrus.AddHook(&errorEchoHook{out: stderr})
	return func() { _ = logFile.Close() }, nil
}

// errorEchoHook copies error, fatal and panic entries to out.
type errorEchoHook struct {
	out io.Writer
}

func (h *errorEchoHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *errorEchoHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

// run answers the request at inputPath and writes the response to outputPath.
// The output file is only created once the response has been built.
func run(inputPath, outputPath string, cfg *Config, runID string) error {
	log := logrus.WithField("run", runID)
	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	tr := trace.NewDispatchTrace(runID)
	adapter := colin.NewAdapter(cfg.NewApplication())
	adapter.MaxInputBytes = cfg.InputLimit()
	adapter.Trace = tr
	adapter.Log = log

	log.Infof("Processing %s -> %s", inputPath, outputPath)
	var out bytes.Buffer
	if err := adapter.Process(in, &out); err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}
	if err := writeOutput(outputPath, out.Bytes()); err != nil {
		return err
	}

	summary := trace.Summarize(tr)
	log.Infof("Answered %d requests (%d supported, %d unsupported)",
		summary.TotalRequests, summary.SupportedCount, summary.UnsupportedCount)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == stdioPath {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path string, data []byte) error {
	if path == stdioPath {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing response to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// executeCommand runs cmd and returns the process exit code. Argument and
// flag errors are printed with the usage text on the command's error writer.
func executeCommand(cmd *cobra.Command) int {
	c, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}
	fmt.Fprintln(c.ErrOrStderr(), "Error:", err)
	fmt.Fprint(c.ErrOrStderr(), c.UsageString())
	return 1
}

// Execute runs the CLI root command
func Execute() {
	os.Exit(executeCommand(rootCmd))
}
