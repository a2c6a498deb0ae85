package services

import "appeals-api/models"

// responseTransitions is the state machine for the "response recorded"
// event: recording a response moves an appeal to responded unless it is
// already at or past that state. An explicit status choice in the same
// call always wins over this table.
var responseTransitions = map[string]string{
	models.StatusCodeReceived:   models.StatusCodeResponded,
	models.StatusCodeInProgress: models.StatusCodeResponded,
	models.StatusCodeResponded:  "",
	models.StatusCodeClosed:     "",
}

// NextStatusOnResponse returns the status code an appeal moves to when a
// response is recorded without an explicit status choice. ok is false
// when no transition applies.
func NextStatusOnResponse(current string) (string, bool) {
	next, known := responseTransitions[current]
	if !known || next == "" {
		return "", false
	}
	return next, true
}
