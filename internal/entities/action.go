package entities

// ActionKind enumerates the battle actions a combatant can take. The set is
// closed; unknown tags are rejected at the transport boundary so the resolver
// only ever sees these four.
type ActionKind string

// Action kinds
const (
	ActionAttack ActionKind = "attack"
	ActionDefend ActionKind = "defend"
	ActionSkill  ActionKind = "skill"
	ActionItem   ActionKind = "item"
)

// ParseActionKind maps a wire-level action tag to its ActionKind. The second
// return is false for anything outside the closed set.
func ParseActionKind(s string) (ActionKind, bool) {
	switch ActionKind(s) {
	case ActionAttack, ActionDefend, ActionSkill, ActionItem:
		return ActionKind(s), true
	default:
		return "", false
	}
}

// TurnAction is a player's requested action for one turn. ItemID is only
// meaningful when Kind is ActionItem; the other variants carry no payload.
type TurnAction struct {
	Kind   ActionKind
	ItemID int32
}
