package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/term"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var configPath string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&configPath, "config", "", "path to a fourth.toml config file")
	flag.Parse()

	cfg, err := resolveConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	color := term.IsTerminal(int(os.Stderr.Fd()))
	if cfg.Color != nil {
		color = *cfg.Color
	}

	var opts = []Option{
		WithOutput(os.Stdout),
		WithDiag(os.Stderr),
		WithColor(color),
	}
	if cfg.HeapLimit > 0 {
		opts = append(opts, WithHeapLimit(cfg.HeapLimit))
	}
	if trace || cfg.Trace {
		commonlog.Configure(2, nil)
		logger := commonlog.GetLogger("fourth")
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			logger.Debugf(mess, args...)
		}))
	}

	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, diagMessage(color, tagBadLoad, fmt.Sprintf("File '%v' not found", path)))
			os.Exit(1)
		}
		opts = append(opts, WithSource(newReaderSource(f, true)))
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		src, err := newReadlineSource(cfg.Prompt, cfg.History)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, WithSource(src))
	} else {
		opts = append(opts, WithSource(newReaderSource(os.Stdin, true)))
	}

	ft := New(opts...)
	defer ft.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := ft.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
