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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/train"
)

func TestReadTriples(t *testing.T) {
	triples := ReadTriples(strings.NewReader("1 2 3\n1 2 3\n"))
	assert.Equal(t, []train.Triple{
		{UserId: 1, ItemId: 2, Value: 3.0},
		{UserId: 1, ItemId: 2, Value: 3.0},
	}, triples)
}

func TestWriteFactors(t *testing.T) {
	data := factor.New(2, 3, false)
	data.SetFactors(func(r, c int) float64 { return float64(r*3 + c) })

	var buf bytes.Buffer
	err := WriteFactors(&buf, []int64{3, 5}, data)
	assert.NoError(t, err)
	assert.Equal(t,
		"3 0.000000000 1.000000000 2.000000000\n5 3.000000000 4.000000000 5.000000000\n",
		buf.String())
}

func TestWriteFactors_WithBiases(t *testing.T) {
	data := factor.New(1, 1, true)
	data.SetFactors(func(r, c int) float64 { return 2 })
	data.SetBiases(func(r int) float64 { return 1 })

	var buf bytes.Buffer
	err := WriteFactors(&buf, []int64{7}, data)
	assert.NoError(t, err)
	assert.Equal(t, "7 1.000000000 2.000000000\n", buf.String())
}
