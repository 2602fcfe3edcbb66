// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package selftest_test

import (
	"io"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/ipfs/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoplane/rsapad/selftest"
)

func setUp(t *testing.T, level string) {
	t.Helper()
	if err := log.SetLogLevel("rsapad", level); err != nil {
		t.Fatal(err)
	}
}

func TestRunPasses(t *testing.T) {
	setUp(t, "debug")
	assert.NoError(t, selftest.Run(nil))
}

// failReader always fails, standing in for a broken entropy source.
type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

// A failing random source must surface as an aggregated error covering
// every affected check, not a panic or an early stop.
func TestRunAggregatesFailures(t *testing.T) {
	setUp(t, "error")
	err := selftest.Run(failReader{})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Greater(t, len(merr.Errors), 1)
}
