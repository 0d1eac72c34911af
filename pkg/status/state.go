// Package status classifies a mod's deployment state and the actions that
// state permits. Nothing is cached: every query recomputes from the
// filesystem.
package status

// State is a mod's position in the deployment pipeline
type State int

const (
	MissingChunkID State = iota
	NoSourceArtifact
	ReadyToMove
	MovedReadyToPublish
	MovedPublishNotConfigured
)

// Severity drives status styling
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
	SeverityOK    Severity = "ok"
)

var stateNames = map[State]string{
	MissingChunkID:            "MissingChunkId",
	NoSourceArtifact:          "NoSourceArtifact",
	ReadyToMove:               "ReadyToMove",
	MovedReadyToPublish:       "MovedReadyToPublish",
	MovedPublishNotConfigured: "MovedPublishNotConfigured",
}

var stateLabels = map[State]string{
	MissingChunkID:            "Missing ChunkID",
	NoSourceArtifact:          "No Pak Found",
	ReadyToMove:               "Ready to be Moved",
	MovedReadyToPublish:       "Moved | Ready for Deploy",
	MovedPublishNotConfigured: "Moved | Steam Not Configured",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Label is the human-readable status text
func (s State) Label() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "Unknown State"
}

// Severity returns how the state should be highlighted
func (s State) Severity() Severity {
	switch s {
	case MissingChunkID, NoSourceArtifact:
		return SeverityError
	case ReadyToMove, MovedReadyToPublish:
		return SeverityOK
	default:
		return SeverityWarn
	}
}

// MarshalText renders the state by name in json and yaml output
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify maps observations onto a state. A missing chunk id dominates
// every other observation.
func Classify(chunkID int, hasSource, moved bool, publishAppID int) State {
	switch {
	case chunkID <= 0:
		return MissingChunkID
	case !moved && !hasSource:
		return NoSourceArtifact
	case !moved:
		return ReadyToMove
	case publishAppID > 0:
		return MovedReadyToPublish
	default:
		return MovedPublishNotConfigured
	}
}

// Actions lists which operations are currently permitted
type Actions struct {
	Move    bool `json:"move" yaml:"move"`
	Remove  bool `json:"remove" yaml:"remove"`
	Publish bool `json:"publish" yaml:"publish"`
}

// ActionsFor derives the permitted actions from a state
func ActionsFor(state State, moved bool) Actions {
	return Actions{
		Move:    state == ReadyToMove,
		Remove:  moved,
		Publish: state == MovedReadyToPublish,
	}
}
