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

// Package fatal reports programmer-error and contract-violation conditions:
// the kind of state that is never expected to occur given a correct caller
// and that no recovery strategy exists for (a shape mismatch passed to
// Matrix.Add, a non-finite gradient term inside the training loop). These
// are logged at zap's Fatal level, which terminates the process, as opposed
// to recoverable conditions which are returned as Go errors wrapped with
// github.com/juju/errors.
package fatal

import (
	"fmt"

	"github.com/gorse-io/gomf/base/log"
	"go.uber.org/zap"
)

// Check logs msg at Fatal level and terminates the process. It never
// returns.
func Check(format string, args ...interface{}) {
	log.Logger().Fatal(fmt.Sprintf(format, args...))
}

// IfError logs context together with err at Fatal level, terminating the
// process, when err is non-nil.
func IfError(err error, context string) {
	if err != nil {
		log.Logger().Fatal(context, zap.Error(err))
	}
}
