package service

import "lingualeads_backend/platform/config"

// Assign selects the agent for the next lead by cycling the fixed roster:
// roster[existingLeadCount mod len(roster)]. The count is read from the
// store at call time, not incremented atomically with the insert, so two
// concurrent creations can land on the same index. That is accepted: the
// requirement is fair-ish distribution, not strict round-robin.
func Assign(existingLeadCount int64, roster []config.Agent) config.Agent {
	if len(roster) == 0 {
		return config.Agent{}
	}
	return roster[existingLeadCount%int64(len(roster))]
}
