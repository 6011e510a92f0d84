// Copyright 2025 Poiesic Systems
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


package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poiesic/frontdesk/core"
)

var (
	questionPrefixes = []string{"frage:", "question:"}
	answerPrefixes   = []string{"antwort:", "answer:"}
)

// ParseFAQ reads line-oriented FAQ records. A question line sets the
// question, a later answer line sets the answer, and the pair is emitted once
// both are non-empty. Incomplete records are dropped.
func ParseFAQ(r io.Reader) ([]core.FAQPair, error) {
	var pairs []core.FAQPair
	var question, answer string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if v, ok := cutPrefixFold(line, questionPrefixes); ok {
			question, answer = v, ""
		} else if v, ok := cutPrefixFold(line, answerPrefixes); ok {
			answer = v
		}
		if question != "" && answer != "" {
			pairs = append(pairs, core.NewFAQPair(question, answer))
			question, answer = "", ""
		}
	}
	if err := scanner.Err(); err != nil {
		return pairs, err
	}
	return pairs, nil
}

func cutPrefixFold(line string, prefixes []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

// FAQDirectory loads FAQ pairs from the *.txt files of a directory.
type FAQDirectory struct {
	dir    string
	logger *slog.Logger
}

// NewFAQDirectory creates a loader for dir.
func NewFAQDirectory(dir string, logger *slog.Logger) *FAQDirectory {
	if logger == nil {
		logger = slog.Default().With("component", "faq-loader")
	}
	return &FAQDirectory{dir: dir, logger: logger}
}

// LoadFAQ reads every *.txt file in name order. A missing directory yields
// an empty set and a warning; unreadable files are skipped.
func (d *FAQDirectory) LoadFAQ(ctx context.Context) ([]core.FAQPair, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Warn("faq directory not found", "dir", d.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read faq directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var pairs []core.FAQPair
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		filePairs, err := d.loadFile(filepath.Join(d.dir, name))
		if err != nil {
			d.logger.Warn("skipping faq file", "file", name, "err", err)
			continue
		}
		pairs = append(pairs, filePairs...)
	}
	d.logger.Info("faq loaded", "files", len(names), "pairs", len(pairs))
	return pairs, nil
}

func (d *FAQDirectory) loadFile(path string) ([]core.FAQPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFAQ(f)
}
