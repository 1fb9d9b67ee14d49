package entities

import "github.com/l2enel/Revisited-Udacity/domain/entities/filter"

// Metadata contains extra information about the data produced in one round of reports
// + SessionID: ID of the round of reports that produced the data
// + Type: this field helps us to recognize what type of data is
// + Filters: filters applied to the dataset
// + Message: message with extra information
type Metadata struct {
	SessionID string           `json:"session_id"`
	Type      string           `json:"type"`
	Filters   filter.Selection `json:"filters"`
	Message   string           `json:"message,omitempty"`
}

func NewMetadata(sessionID string, dataType string, filters filter.Selection, message string) Metadata {
	return Metadata{
		SessionID: sessionID,
		Type:      dataType,
		Filters:   filters,
		Message:   message,
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.Filters.City
}

func (m Metadata) GetSessionID() string {
	return m.SessionID
}

func (m Metadata) GetMessage() string {
	return m.Message
}
