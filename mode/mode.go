// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/fault"
)

// Mode - the contract status
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Genesis
	Live
	ReadOnly
	maximum
)

var globalData struct {
	sync.RWMutex
	log  *logger.L
	mode Mode

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system in the given status
func Initialise(initial Mode) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if initial <= Stopped || initial >= maximum {
		return fault.ErrInvalidStatus
	}

	globalData.log = logger.New("mode")
	globalData.log.Infof("starting in: %s", initial)

	globalData.mode = initial
	globalData.initialised = true

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {
	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	Set(Stopped)

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Set - change mode
func Set(mode Mode) {
	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	} else {
		globalData.log.Errorf("ignore invalid set: %d", mode)
	}
}

// Get - the current mode
func Get() Mode {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode != globalData.mode
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Genesis:
		return "Genesis"
	case Live:
		return "Live"
	case ReadOnly:
		return "ReadOnly"
	default:
		return "*Unknown*"
	}
}

// Parse - mode from its name
func Parse(s string) (Mode, error) {
	switch s {
	case "Genesis", "genesis":
		return Genesis, nil
	case "Live", "live":
		return Live, nil
	case "ReadOnly", "readonly", "read-only":
		return ReadOnly, nil
	default:
		return Stopped, fault.ErrInvalidStatus
	}
}

// MarshalJSON - mode as its name
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON - mode from its name
func (m *Mode) UnmarshalJSON(data []byte) error {
	s := ""
	err := json.Unmarshal(data, &s)
	if nil != err {
		return fault.ErrInvalidStatus
	}
	*m, err = Parse(s)
	return err
}
