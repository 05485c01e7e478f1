/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package main

import (
	"io"
	"os"
)

// stdout is standard output with a Close that leaves it open.
type stdout struct {
	io.Writer
}

func (stdout) Close() error {
	return nil
}

// openOutput opens outf for writing, or standard output when outf is empty.
func openOutput(outf string) (io.WriteCloser, error) {
	if outf == "" {
		return stdout{os.Stdout}, nil
	}
	return os.OpenFile(outf, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
}

// writeOutput opens outf, hands it to fn and closes it, keeping the first
// error.
func writeOutput(outf string, fn func(w io.Writer) error) (err error) {
	out, err := openOutput(outf)
	if err != nil {
		return err
	}
	defer func() {
		closeError := out.Close()
		if err == nil {
			err = closeError
		}
	}()

	if err = fn(out); err != nil {
		return err
	}
	if outf != "" {
		log.Infof("wrote %v", outf)
	}
	return nil
}
