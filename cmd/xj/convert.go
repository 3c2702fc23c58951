package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/parse"
)

func convertFiles(cfg *MainConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := convertFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func convertFile(cfg *MainConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := convertReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func convertReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	y, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error converting: %w", err)
	}
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	return nil
}
