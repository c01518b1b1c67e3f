package tictactoe

import "encoding/json"

// Snapshot is the persistable form of a Game. Callers treat it as opaque and hand it back
// to RecoverGame unchanged.
type Snapshot struct {
	SkillLevel int `json:"skillLevel"`
	State      int `json:"state"`
	Turn       int `json:"turn"`

	// set when decoding found a field missing
	malformed bool
}

// UnmarshalJSON never fails: a snapshot without all three fields decodes as malformed,
// and a field that is not an integer decodes as zero, so RecoverGame can fall back safely.
func (that *Snapshot) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*that = Snapshot{malformed: true}
		return nil //nolint: nilerr // a broken blob recovers as a new game
	}

	skillLevel, hasSkill := fields["skillLevel"]
	state, hasState := fields["state"]
	turn, hasTurn := fields["turn"]
	if !hasSkill || !hasState || !hasTurn {
		*that = Snapshot{malformed: true}
		return nil
	}

	*that = Snapshot{
		SkillLevel: decodeInt(skillLevel),
		State:      decodeInt(state),
		Turn:       decodeInt(turn),
	}

	return nil
}

func decodeInt(raw json.RawMessage) int {
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return value
}

// Malformed reports whether the snapshot was decoded with a field missing.
func (that Snapshot) Malformed() bool {
	return that.malformed
}
