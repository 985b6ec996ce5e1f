// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// maxTokenSize bounds a single whitespace-separated token on input.
const maxTokenSize = 1 << 20

// parseValues parses comma- or whitespace-separated values in strconv
// syntax, which includes "NaN", "Inf", "-Inf" and hexadecimal floats.
func parseValues(fields []string) ([]float64, error) {
	var values []float64
	for _, field := range fields {
		for _, tok := range strings.FieldsFunc(field, isSeparator) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("parse value %q: %w", tok, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// readValues reads all values from r.
func readValues(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var values []float64
	for sc.Scan() {
		vs, err := parseValues([]string{sc.Text()})
		if err != nil {
			return nil, err
		}
		values = append(values, vs...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return values, nil
}

// loadValues takes values from args, else from the file at path, else
// from stdin.
func loadValues(args []string, path string, stdin io.Reader) ([]float64, error) {
	if len(args) > 0 {
		return parseValues(args)
	}
	if path == "" {
		return readValues(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open values: %w", err)
	}
	defer f.Close()
	return readValues(f)
}

// formatter renders a float64 for output.
type formatter func(float64) string

func newFormatter(name string) (formatter, error) {
	switch name {
	case "g":
		return func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }, nil
	case "e":
		return func(v float64) string { return strconv.FormatFloat(v, 'e', 16, 64) }, nil
	case "x":
		return func(v float64) string { return strconv.FormatFloat(v, 'x', -1, 64) }, nil
	case "b":
		return func(v float64) string { return fmt.Sprintf("%#016x", math.Float64bits(v)) }, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want g, e, x or b)", name)
	}
}
