package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mailchannels/go-mimeparse/config"
	"github.com/mailchannels/go-mimeparse/internal/logging"
	"github.com/mailchannels/go-mimeparse/message"
)

var (
	configPath string
	format     string

	dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "parse a message and print its part tree",
		Long: `dump reads a message from a file argument (or stdin, if no file is
given), parses it, and prints the resulting part tree: headers, body
classification, and attachments.`,
		RunE: runDump,
	}
)

func init() {
	dumpCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to an optional config file (YAML/JSON/TOML)")
	dumpCmd.Flags().StringVarP(&format, "format", "f", "",
		"output format: text or json (overrides config's output_format)")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if format != "" {
		cfg.OutputFormat = format
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	requestID := uuid.New().String()
	message.SetLogger(logging.New(cfg.LogLevel))
	message.SetMaxDepth(cfg.MaxRecursionDepth)

	// opLog is the CLI's own operation-boundary logger, separate from the
	// parser's internal recovery-path diagnostics (internal/logging, above):
	// one structured record per invocation, the way shineum-smtp-proxy's
	// delivery services log a request at the service boundary while the lower layers
	// stay silent unless something goes wrong.
	opLog := zerolog.New(os.Stderr).Level(zerologLevel(cfg.LogLevel)).With().
		Timestamp().Str("request_id", requestID).Logger()

	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	start := time.Now()
	opLog.Debug().Int("bytes", len(raw)).Msg("parsing message")
	msg := message.Parse(raw)
	if msg == nil {
		opLog.Warn().Dur("elapsed", time.Since(start)).Msg("no header block found, nothing to dump")
		return fmt.Errorf("input has no parseable header block")
	}
	opLog.Info().
		Dur("elapsed", time.Since(start)).
		Int("parts", len(msg.Parts)).
		Msg("parse complete")

	switch strings.ToLower(cfg.OutputFormat) {
	case "json":
		return printJSON(cmd.OutOrStdout(), msg)
	default:
		printText(cmd.OutOrStdout(), msg)
		return nil
	}
}

type partView struct {
	Index       int      `json:"index"`
	ContentType string   `json:"content_type,omitempty"`
	BodyKind    string   `json:"body_kind"`
	Encoding    string   `json:"encoding"`
	Attachment  bool     `json:"attachment"`
	Inline      bool     `json:"inline"`
	Children    []int    `json:"children,omitempty"`
	TextLen     int      `json:"text_len,omitempty"`
	BytesLen    int      `json:"bytes_len,omitempty"`
	Problem     bool     `json:"encoding_problem,omitempty"`
	Headers     []string `json:"headers,omitempty"`
}

type messageView struct {
	Parts       []partView `json:"parts"`
	TextBody    []int      `json:"text_body"`
	HTMLBody    []int      `json:"html_body"`
	Attachments []int      `json:"attachments"`
}

func bodyKindName(k message.BodyKind) string {
	switch k {
	case message.BodyMultipart:
		return "multipart"
	case message.BodyText:
		return "text"
	case message.BodyHTML:
		return "html"
	case message.BodyBinary:
		return "binary"
	case message.BodyInlineBinary:
		return "inline-binary"
	case message.BodyMessage:
		return "message"
	default:
		return "unknown"
	}
}

func buildView(msg *message.Message) messageView {
	view := messageView{TextBody: msg.TextBody, HTMLBody: msg.HTMLBody, Attachments: msg.Attachments}
	for i, p := range msg.Parts {
		pv := partView{
			Index:      i,
			BodyKind:   bodyKindName(p.Body.Kind),
			Encoding:   p.Encoding.String(),
			Attachment: p.IsAttachment(),
			Inline:     p.IsInline(),
			Problem:    p.IsEncodingProblem,
		}
		if ct := p.ContentTypeHeader(); ct != nil {
			pv.ContentType = ct.Type + "/" + ct.SubType
		}
		if p.Body.Kind == message.BodyMultipart {
			pv.Children = p.Body.Children
		}
		pv.TextLen = len(p.Body.Text)
		pv.BytesLen = len(p.Body.Bytes)
		for _, h := range p.Headers {
			pv.Headers = append(pv.Headers, h.Name)
		}
		view.Parts = append(view.Parts, pv)
	}
	return view
}

func printJSON(w io.Writer, msg *message.Message) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildView(msg))
}

func printText(w io.Writer, msg *message.Message) {
	view := buildView(msg)
	fmt.Fprintf(w, "%s\n", msg.String())
	for _, p := range view.Parts {
		fmt.Fprintf(w, "  [%d] %-24s body=%-14s encoding=%-16s", p.Index, orDash(p.ContentType), p.BodyKind, p.Encoding)
		if p.Attachment {
			fmt.Fprint(w, " attachment")
		}
		if p.Inline {
			fmt.Fprint(w, " inline")
		}
		if p.Problem {
			fmt.Fprint(w, " encoding-problem")
		}
		fmt.Fprintln(w)
		if len(p.Children) > 0 {
			fmt.Fprintf(w, "      children=%v\n", p.Children)
		}
	}
	fmt.Fprintf(w, "text_body=%v html_body=%v attachments=%v\n", view.TextBody, view.HTMLBody, view.Attachments)
}

// zerologLevel maps the same level names internal/logging accepts
// ("debug", "info", "warn", "error") onto zerolog's level type, so one
// --verbose/config knob governs both loggers. Unrecognized names fall
// back to info here (zerolog.ParseLevel itself reports them as an error).
func zerologLevel(name string) zerolog.Level {
	lv, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lv
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
