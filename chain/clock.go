// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
)

// Ticker - block clock advanced once per interval
//
// Ticker is a background.Process
type Ticker struct {
	height   uint64
	interval time.Duration
	log      *logger.L
}

// NewTicker - clock starting at initial
func NewTicker(initial uint64, interval time.Duration) *Ticker {
	return &Ticker{
		height:   initial,
		interval: interval,
		log:      logger.New("clock"),
	}
}

// BlockHeight - implements Clock
func (t *Ticker) BlockHeight() uint64 {
	return atomic.LoadUint64(&t.height)
}

// Advance - move one block forward and return the new height
func (t *Ticker) Advance() uint64 {
	return atomic.AddUint64(&t.height, 1)
}

// Run - advance until shutdown
func (t *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	log := t.log
	log.Infof("starting at height: %d  interval: %s", t.BlockHeight(), t.interval)

	if t.interval <= 0 {
		log.Warn("no interval, clock stays fixed")
		<-shutdown
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			h := t.Advance()
			log.Debugf("height: %d", h)
		}
	}
	log.Infof("stopped at height: %d", t.BlockHeight())
}
