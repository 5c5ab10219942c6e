package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/calumari/jsexp"
)

type Config struct {
	Pretty bool   `cli:"name=pretty aliases=p desc='indent output, one field per line'"`
	Prefix string `cli:"name=prefix desc='override the namespace prefix (default: the detected format)'"`
	Out    string `cli:"name=o desc='output file (default stdout)'"`
	Color  bool   `cli:"name=color desc='colorize output even when not writing to a terminal'"`
	Opaque bool   `cli:"name=opaque desc='stringify unrecognized values instead of failing'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsexp").
		WithSynopsis("jsexp [opts] [files]").
		WithDescription("jsexp converts JSON and YAML documents to namespaced S-expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func convert(cfg *Config, cc *cli.Context, args []string) error {
	out := io.Writer(cc.Out)
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return fmt.Errorf("could not create %q: %w", cfg.Out, err)
		}
		defer f.Close()
		out = f
	}
	if len(args) == 0 {
		return convertFile(cfg, out, cc, "-")
	}
	for _, file := range args {
		if err := convertFile(cfg, out, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *Config, w io.Writer, cc *cli.Context, file string) error {
	var (
		r    io.Reader
		name string
	)
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r, name = f, file
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	tree, format, err := jsexp.DecodeDetect(name, data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = string(format)
	}
	opts := []jsexp.Option{
		jsexp.WithPrefix(prefix),
		jsexp.WithPretty(cfg.Pretty),
		jsexp.WithOpaqueFallback(cfg.Opaque),
	}
	text, err := jsexp.Marshal(tree, opts...)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", file, err)
	}
	if useColor(cfg, w) {
		text = highlight(text)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
