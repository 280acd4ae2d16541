// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"varsweep/pkg/types"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("2 of 3 items could not be removed")
	err := &ExitError{Code: types.ExitCode(1), Err: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want the cause message", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ExitError should unwrap to its cause")
	}

	bare := &ExitError{Code: types.ExitCode(2)}
	if bare.Error() != "exit status 2" {
		t.Errorf("Error() without cause = %q, want exit status 2", bare.Error())
	}
	if bare.Unwrap() != nil {
		t.Error("ExitError without cause should unwrap to nil")
	}
}
