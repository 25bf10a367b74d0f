// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

// ircat connects a terminal to a remote IRC host and relays bytes in
// both directions, answering the server's PING probes itself so an
// idle session survives the server's ping timeout.
//
// Usage:
//
//	ircat <host> [port] [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ircat-project/ircat/lib/clock"
	"github.com/ircat-project/ircat/lib/config"
	"github.com/ircat-project/ircat/lib/netutil"
	"github.com/ircat-project/ircat/lib/version"
	"github.com/ircat-project/ircat/relay"
	"github.com/ircat-project/ircat/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Printf("error: %v\n\n", usage)
			printUsage(os.Stdout)
			os.Exit(2)
		}
		// Fatal setup errors surface as a single explanatory line.
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// usageError marks argument problems that should print the usage text
// and exit before any resolution or connection attempt.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// invocation holds the parsed command line.
type invocation struct {
	host           string
	port           int // 0 means no port argument; the config default applies
	configPath     string
	debug          bool
	externalClient string
	showVersion    bool
	showHelp       bool
}

// newFlagSet binds the ircat flags to inv.
func newFlagSet(inv *invocation) *pflag.FlagSet {
	flags := pflag.NewFlagSet("ircat", pflag.ContinueOnError)
	flags.StringVar(&inv.configPath, "config", "",
		"path to the config file (overrides IRCAT_CONFIG)")
	flags.BoolVar(&inv.debug, "debug", false,
		"enable debug logging")
	flags.StringVar(&inv.externalClient, "external-client", "",
		"relay through this client binary (invoked as \"<binary> <host> <port>\") instead of dialing directly")
	flags.BoolVar(&inv.showVersion, "version", false,
		"print version and exit")
	flags.BoolVarP(&inv.showHelp, "help", "h", false,
		"show this help")
	return flags
}

// parseInvocation parses arguments into an invocation. Argument
// problems come back as *usageError.
func parseInvocation(arguments []string) (*invocation, error) {
	inv := &invocation{}
	flags := newFlagSet(inv)
	flags.SetOutput(io.Discard)

	if err := flags.Parse(arguments); err != nil {
		return nil, &usageError{err}
	}
	if inv.showHelp || inv.showVersion {
		return inv, nil
	}

	positionals := flags.Args()
	if len(positionals) == 0 {
		return nil, &usageError{errors.New("no host provided")}
	}
	inv.host = positionals[0]

	if len(positionals) > 1 {
		port, err := netutil.ValidatePort(positionals[1])
		if err != nil {
			return nil, &usageError{err}
		}
		inv.port = port
	}
	if len(positionals) > 2 {
		return nil, &usageError{fmt.Errorf("unexpected argument %q", positionals[2])}
	}
	return inv, nil
}

func printUsage(w io.Writer) {
	flags := newFlagSet(&invocation{})
	fmt.Fprintf(w, `ircat - terminal IRC client that answers keep-alive probes

Usage:
  ircat <host> [port] [flags]

Flags:
%s
Examples:
  # Connect on the default port (6667).
  ircat irc.libera.chat

  # Connect on an alternate port.
  ircat irc.example.org 6669

  # Relay through an external client instead of dialing directly.
  ircat --external-client /usr/bin/telnet irc.example.org
`, flags.FlagUsages())
}

// pickPort returns the effective remote port: the port argument when
// given, otherwise the configured default.
func pickPort(inv *invocation, cfg *config.Config) int {
	if inv.port != 0 {
		return inv.port
	}
	return cfg.DefaultPort
}

func loadConfig(inv *invocation) (*config.Config, error) {
	if inv.configPath != "" {
		return config.LoadFile(inv.configPath)
	}
	return config.Load()
}

func run(arguments []string) error {
	inv, err := parseInvocation(arguments)
	if err != nil {
		return err
	}
	if inv.showHelp {
		printUsage(os.Stdout)
		return nil
	}
	if inv.showVersion {
		fmt.Printf("ircat %s\n", version.Info())
		return nil
	}

	cfg, err := loadConfig(inv)
	if err != nil {
		return err
	}

	logger := newLogger(inv.debug || cfg.Debug)
	port := pickPort(inv, cfg)

	externalClient := inv.externalClient
	if externalClient == "" {
		externalClient = cfg.ExternalClient
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.Real()

	var tr transport.Transport
	if externalClient != "" {
		logger.Debug("spawning external client",
			"binary", externalClient, "host", inv.host, "port", port)
		tr, err = transport.StartSubprocess(externalClient,
			[]string{inv.host, strconv.Itoa(port)}, clk, cfg.ShutdownGraceDuration())
		if err != nil {
			return err
		}
	} else {
		addr, resolveErr := netutil.ResolveIPv4(ctx, inv.host)
		if resolveErr != nil {
			return resolveErr
		}
		fmt.Printf("Trying %s...\n", addr)
		tcp, dialErr := transport.DialTCP(ctx, addr, port)
		if dialErr != nil {
			return dialErr
		}
		tr = tcp
	}

	input, err := relay.NewCancelableInput(os.Stdin)
	if err != nil {
		tr.Close()
		return err
	}

	r := relay.New(tr, relay.Options{
		Input:     input,
		Output:    os.Stdout,
		Logger:    logger,
		Clock:     clk,
		ChunkSize: cfg.ChunkSize,
	})

	err = r.Run(ctx)

	if ctx.Err() != nil {
		tidyInterruptEcho()
	}
	return err
}

// tidyInterruptEcho erases the "^C" the terminal echoes for the
// interrupt keystroke so the session ends on a clean line.
func tidyInterruptEcho() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print("\b\b  \b\b\n")
	}
}
