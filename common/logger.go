// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"github.com/ipfs/go-log"
)

// Logger is the process-wide logger for the library. Log levels are
// controlled externally via log.SetLogLevel("rsapad", ...).
var Logger = log.Logger("rsapad")
