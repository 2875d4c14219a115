package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/leapmux/tstamp/internal/config"
	"github.com/leapmux/tstamp/internal/lineio"
	"github.com/leapmux/tstamp/internal/metrics"
	"github.com/leapmux/tstamp/internal/util/sanitize"
	"github.com/leapmux/tstamp/timeserde"
)

func runConvert(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, rest, err := loadConfig("convert", args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("convert: unexpected arguments %q", rest)
	}

	start := time.Now()
	converted, skipped, err := convert(cfg, stdin, stdout)
	metrics.ConvertDuration.Observe(time.Since(start).Seconds())
	metrics.LastRunTimestamp.SetToCurrentTime()

	slog.Info("convert finished",
		"input_format", cfg.InputFormat,
		"output_format", cfg.OutputFormat,
		"converted", humanize.Comma(converted),
		"skipped", humanize.Comma(skipped),
		"elapsed", time.Since(start),
	)

	if cfg.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
			err = errors.Join(err, fmt.Errorf("write metrics: %w", werr))
		}
	}
	return err
}

func convert(cfg *config.Config, stdin io.Reader, stdout io.Writer) (converted, skipped int64, err error) {
	in, err := lineio.Open(cfg.Input, stdin)
	if err != nil {
		return 0, 0, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := lineio.Create(cfg.Output, stdout)
	if err != nil {
		return 0, 0, fmt.Errorf("create output: %w", err)
	}
	w := bufio.NewWriter(out)

	decode := decoderFor(cfg)
	encode := encoderFor(cfg.OutputFormat)

	// fail records a bad line; it returns non-nil only in strict mode.
	fail := func(lineNo int, line, outcome string, err error) error {
		metrics.RecordConversion(cfg.InputFormat, cfg.OutputFormat, outcome)
		if cfg.Strict {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		slog.Warn("skipping line", "line", lineNo, "input", sanitize.LogValue(line), "error", err)
		skipped++
		return nil
	}

	err = lineio.Each(in, func(lineNo int, line string, err error) error {
		if err != nil {
			return fail(lineNo, line, metrics.OutcomeInvalid, err)
		}
		i, err := decode(timeserde.NewTextDeserializer(line))
		if err != nil {
			return fail(lineNo, line, metrics.OutcomeInvalid, err)
		}
		text, err := encodeText(encode, i)
		if err != nil {
			return fail(lineNo, line, metrics.OutcomeError, err)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		metrics.RecordConversion(cfg.InputFormat, cfg.OutputFormat, metrics.OutcomeOK)
		converted++
		return nil
	})
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return converted, skipped, err
}
