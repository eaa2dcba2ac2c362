package models

// Participant represents a traveler on a trip.
//
// The ID never changes once the traveler is added; DisplayName may be edited.
type Participant struct {
	// ID is the unique identifier for the traveler (UUID format for server-created travelers).
	ID string

	// DisplayName is the name shown in balances and settlement plans.
	DisplayName string
}

// ParticipantIndex maps participant IDs to their position in the list.
func ParticipantIndex(participants []Participant) map[string]int {
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		index[p.ID] = i
	}
	return index
}
