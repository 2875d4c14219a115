package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/leapmux/tstamp/internal/util/sanitize"
)

func runParse(args []string, stdout io.Writer) error {
	cfg, texts, err := loadConfig("parse", args)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return errors.New("parse: no timestamps given")
	}

	encode := encoderFor(cfg.OutputFormat)
	for _, text := range texts {
		i, err := parseAny(text)
		if err != nil {
			if cfg.Strict {
				return err
			}
			slog.Warn("skipping value", "input", sanitize.LogValue(text), "error", err)
			continue
		}
		out, err := encodeText(encode, i)
		if err != nil {
			return fmt.Errorf("encode %q: %w", text, err)
		}
		if cfg.Relative {
			out += "\t" + humanize.RelTime(i.Time(), clock(), "ago", "from now")
		}
		if _, err := fmt.Fprintln(stdout, out); err != nil {
			return err
		}
	}
	return nil
}
