package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sniff/pkg/detect"
)

const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatClasses = "classes"
)

func validFormat(f string) bool {
	switch f {
	case formatJSON, formatYAML, formatClasses:
		return true
	}
	return false
}

func writeResult(w io.Writer, format string, res detect.Result) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatClasses:
		_, err := fmt.Fprintln(w, strings.Join(res.Classes(), " "))
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}
