// Package state holds the interaction state of the dashboard that is not a
// server resource: per-action busy flags, per-slot outcome messages and the
// single transient notification.
package state

import "sync"

// ActionKey identifies one busy-trackable user operation.
type ActionKey string

const (
	ActionReload     ActionKey = "reload"
	ActionSync       ActionKey = "sync"
	ActionTest       ActionKey = "test"
	ActionConfig     ActionKey = "config"
	ActionAdd        ActionKey = "add"
	ActionEdit       ActionKey = "edit"
	ActionBackup     ActionKey = "backup"
	ActionRestore    ActionKey = "restore"
	ActionImportJSON ActionKey = "importJson"
	ActionImportCSV  ActionKey = "importCsv"
	ActionExportJSON ActionKey = "exportJson"
	ActionExportCSV  ActionKey = "exportCsv"
)

// Slot names a UI region holding the last outcome of a related action group.
type Slot string

const (
	SlotGlobal Slot = "global"
	SlotAction Slot = "action"
	SlotConfig Slot = "config"
	SlotAdd    Slot = "add"
	SlotEdit   Slot = "edit"
	SlotData   Slot = "data"
)

type Tone string

const (
	ToneInfo  Tone = "info"
	ToneError Tone = "error"
)

// Message is the last outcome recorded for a slot. Messages are overwritten,
// never accumulated.
type Message struct {
	Text string
	Tone Tone
}

// Tracker is a plain state container. It enforces no invariant across action
// keys; preventing re-entrancy of a single action is the caller's job.
type Tracker struct {
	mu       sync.RWMutex
	busy     map[ActionKey]bool
	messages map[Slot]Message
}

func NewTracker() *Tracker {
	return &Tracker{
		busy:     make(map[ActionKey]bool),
		messages: make(map[Slot]Message),
	}
}

func (t *Tracker) SetBusy(key ActionKey, value bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy[key] = value
}

func (t *Tracker) Busy(key ActionKey) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.busy[key]
}

func (t *Tracker) SetMessage(slot Slot, text string, tone Tone) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages[slot] = Message{Text: text, Tone: tone}
}

func (t *Tracker) Message(slot Slot) Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.messages[slot]
}
