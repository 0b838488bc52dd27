package snake

import "fmt"

const historyMaxEntries = 8

// RoundResult summarises one finished round.
type RoundResult struct {
	Round  int
	Score  int
	Length int
	Ticks  int
	Cause  Cause
}

func (r RoundResult) String() string {
	return fmt.Sprintf("#%d  score %d  len %d  (%s)", r.Round, r.Score, r.Length, r.Cause)
}

// RoundHistory is a ring buffer of the most recent finished rounds plus the
// best score seen since the process started.
type RoundHistory struct {
	entries []RoundResult
	head    int
	count   int
	best    int
}

// NewRoundHistory creates a history with a fixed capacity.
func NewRoundHistory() *RoundHistory {
	return &RoundHistory{
		entries: make([]RoundResult, historyMaxEntries),
	}
}

// Add appends a finished round.
func (h *RoundHistory) Add(r RoundResult) {
	h.entries[h.head] = r
	h.head = (h.head + 1) % historyMaxEntries
	if h.count < historyMaxEntries {
		h.count++
	}
	if r.Score > h.best {
		h.best = r.Score
	}
}

// Recent returns entries in chronological order (oldest first).
func (h *RoundHistory) Recent() []RoundResult {
	result := make([]RoundResult, h.count)
	for i := 0; i < h.count; i++ {
		idx := (h.head - h.count + i + historyMaxEntries) % historyMaxEntries
		result[i] = h.entries[idx]
	}
	return result
}

// Last returns the most recent round, or false if none finished yet.
func (h *RoundHistory) Last() (RoundResult, bool) {
	if h.count == 0 {
		return RoundResult{}, false
	}
	return h.entries[(h.head-1+historyMaxEntries)%historyMaxEntries], true
}

// Best returns the highest score recorded, including rounds that have
// already dropped out of the ring.
func (h *RoundHistory) Best() int {
	return h.best
}

// Len returns how many rounds are held.
func (h *RoundHistory) Len() int {
	return h.count
}
