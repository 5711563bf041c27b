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

package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/factor"
	"github.com/juju/errors"
)

// WriteFactors serialises one line per row of data: "<id> [bias] f_0 ...
// f_{k-1}\n", space-separated, fixed notation with 9 fractional digits.
// ids[i] is the external id of row i of data.
func WriteFactors(w io.Writer, ids []int64, data *factor.Data) error {
	buf := bufio.NewWriter(w)
	for i := 0; i < data.Rows(); i++ {
		if _, err := fmt.Fprintf(buf, "%d", ids[i]); err != nil {
			return errors.Trace(err)
		}
		if data.WithBiases() {
			if _, err := fmt.Fprintf(buf, " %.9f", data.Bias(i)); err != nil {
				return errors.Trace(err)
			}
		}
		row := data.Row(i)
		for _, f := range row {
			if _, err := fmt.Fprintf(buf, " %.9f", f); err != nil {
				return errors.Trace(err)
			}
		}
		if _, err := buf.WriteString("\n"); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(buf.Flush())
}

// IdsFromIndex returns the index -> id slice suitable for passing to
// WriteFactors as ids.
func IdsFromIndex(idx *base.IdIndex) []int64 {
	return idx.Ids()
}
