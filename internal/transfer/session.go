package transfer

import (
	"fmt"

	"facial-transfer/internal/diagnostic"
	"facial-transfer/internal/inspect"
	"facial-transfer/internal/mapping"
	"facial-transfer/internal/scene"
)

// State is the phase of one transfer operation.
type State int

const (
	StateIdle State = iota
	StateSourceLoaded
	StateInspected
	StateTransferring
	StateCompleted
	StateAborted
	StateCleanedUp
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSourceLoaded:
		return "source-loaded"
	case StateInspected:
		return "inspected"
	case StateTransferring:
		return "transferring"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	case StateCleanedUp:
		return "cleaned-up"
	default:
		return "unknown"
	}
}

var transitions = map[State][]State{
	StateIdle:         {StateSourceLoaded},
	StateSourceLoaded: {StateInspected, StateAborted},
	StateInspected:    {StateTransferring, StateAborted},
	StateTransferring: {StateCompleted, StateAborted},
	StateCompleted:    {StateCleanedUp},
	StateAborted:      {StateCleanedUp},
}

// CanTransition reports whether next is a legal successor of s.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether the operation is over.
func (s State) Terminal() bool {
	return s == StateCleanedUp
}

// Session drives one transfer operation end to end. A session runs
// exactly once; the imported source hierarchy is exclusively owned by the
// running operation and is removed on every exit path.
type Session struct {
	host  scene.Host
	table *mapping.Table
	opts  Options

	state  State
	source scene.Ref
}

// NewSession returns an idle session over the given host and table.
func NewSession(host scene.Host, table *mapping.Table, opts Options) *Session {
	return &Session{host: host, table: table, opts: opts}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) advance(next State) {
	if !s.state.CanTransition(next) {
		panic(fmt.Sprintf("illegal session transition %s -> %s", s.state, next))
	}

	s.state = next
}

// Run imports the source file, transfers its keys onto the target rig,
// and removes the imported hierarchy. The returned report is non-nil
// whenever the source was imported, even if the transfer aborted; the
// error carries the fatal condition, if any.
func (s *Session) Run(sourcePath string, targetRig scene.Ref) (report *Report, err error) {
	if s.state != StateIdle {
		return nil, fmt.Errorf("session already ran (state %s)", s.state)
	}

	src, err := s.host.ImportSource(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to import source: %w", err)
	}

	s.source = src
	s.advance(StateSourceLoaded)

	// Scoped resource: the import is released however the run ends. A
	// refused removal is reported so the user knows source artifacts
	// remain, but the applied keys are never rolled back.
	defer func() {
		if report == nil {
			report = NewReport()
		}

		if s.state != StateCompleted && s.state != StateAborted {
			s.advance(StateAborted)
		}

		if cleanupErr := s.host.RemoveSource(s.source); cleanupErr != nil {
			report.CleanupFailed = true
			report.Diags.AddWarning(diagnostic.CodeCleanupFailed,
				fmt.Sprintf("imported source was not removed, clean it up manually: %v", cleanupErr), "", "")
		}

		s.advance(StateCleanedUp)
	}()

	channels, err := inspect.New(s.host).SourceChannels(s.source)
	if err != nil {
		return nil, err
	}

	s.advance(StateInspected)
	s.advance(StateTransferring)

	report, err = Transfer(s.host, channels, targetRig, s.table, s.opts)
	if err != nil {
		s.advance(StateAborted)
		return report, err
	}

	s.advance(StateCompleted)

	return report, nil
}
