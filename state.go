package main

import (
	"log"
	"sync"
)

// State remembers whether the last alert announced a dark night, so the cron
// job only speaks when that changes. It lives in memory; a restart starts
// from "not good".
type State struct {
	mu   sync.Mutex
	good bool
}

// Init() resets the state to "not good"
func (s *State) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.good = false
	log.Println("INFO: Alert state initialized with false value")
}

// Set() records the state announced by the last alert
func (s *State) Set(b bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.good = b
	log.Println("INFO: Alert state updated with", b)
}

// isGood() returns true if the last alert announced a dark night
func (s *State) isGood() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.good
}
