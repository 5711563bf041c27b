// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset implements the ambient plain-text interaction-triple
// reader and factor-file writer used by both CLI front-ends.
package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gorse-io/gomf/base/fatal"
	"github.com/gorse-io/gomf/train"
)

// ReadTriples reads interaction triples, one per line, in the format
// "<userId> <itemId> <value>\n". Lines that do not split into exactly
// three whitespace-separated fields, or whose fields do not parse, are a
// malformed-input condition and abort the process via fatal.Check — this
// mirrors the reference codebase's treatment of corrupt input files as
// bugs in the surrounding pipeline, not recoverable conditions. Empty
// lines are not supported. EOF ends the stream.
func ReadTriples(r io.Reader) []train.Triple {
	var out []train.Triple
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) != 3 {
			fatal.Check("dataset: line %d has %d fields, expected 3: %q", lineNo, len(fields), line)
		}
		userId, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			fatal.Check("dataset: line %d: invalid userId %q", lineNo, fields[0])
		}
		itemId, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fatal.Check("dataset: line %d: invalid itemId %q", lineNo, fields[1])
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			fatal.Check("dataset: line %d: invalid value %q", lineNo, fields[2])
		}
		out = append(out, train.Triple{UserId: userId, ItemId: itemId, Value: value})
	}
	if err := scanner.Err(); err != nil {
		fatal.Check("dataset: failed reading input: %v", err)
	}
	return out
}
