package assistant

import "github.com/singhsaravjit/portfolio-assistant/internal/profile"

// SnapshotSource yields the current profile snapshot. Implemented by
// profile.Store.
type SnapshotSource interface {
	Snapshot() profile.Snapshot
}

// Engine binds the classifier and composer to a live snapshot source.
// It satisfies chat.Responder.
type Engine struct {
	source SnapshotSource
}

func NewEngine(source SnapshotSource) *Engine {
	return &Engine{source: source}
}

func (e *Engine) Welcome() string { return Welcome() }

// Reply composes the answer against whatever profile data has loaded
// by the time the reply timer fires.
func (e *Engine) Reply(utterance string) string {
	return Reply(utterance, e.source.Snapshot())
}
