package models

// Status is a deal's lifecycle label.
type Status string

const (
	StatusProposed  Status = "Proposed"
	StatusAccepted  Status = "Accepted"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
	StatusReleased  Status = "Released"
)

// Lifecycle is the canonical order of statuses; a deal's TimelineIdx indexes it.
var Lifecycle = [...]Status{
	StatusProposed,
	StatusAccepted,
	StatusInTransit,
	StatusDelivered,
	StatusReleased,
}

// LastStep is the TimelineIdx of the terminal status.
const LastStep = len(Lifecycle) - 1

// StatusAt returns the status at idx, clamped into the lifecycle range.
func StatusAt(idx int) Status {
	if idx < 0 {
		idx = 0
	}
	if idx > LastStep {
		idx = LastStep
	}
	return Lifecycle[idx]
}

// IndexOf returns the position of s in Lifecycle, or -1.
func IndexOf(s Status) int {
	for i, st := range Lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// ChatMessage is one line of a deal's chat. TS is unix milliseconds.
type ChatMessage struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
}

// Deal pairs one seeker with one carrier for Kg of luggage.
type Deal struct {
	ID          string        `json:"id"`
	SeekerID    string        `json:"seekerId"`
	CarrierID   string        `json:"carrierId"`
	Kg          float64       `json:"kg"`
	Total       float64       `json:"total"`
	Status      Status        `json:"status"`
	TimelineIdx int           `json:"timelineIdx"`
	Chat        []ChatMessage `json:"chat"`
}

// Consistent reports whether Status and TimelineIdx name the same step.
func (d *Deal) Consistent() bool {
	return d.TimelineIdx >= 0 && d.TimelineIdx <= LastStep && Lifecycle[d.TimelineIdx] == d.Status
}

// Involves reports whether userID is the seeker or the carrier of d.
func (d *Deal) Involves(userID string) bool {
	return userID != "" && (d.SeekerID == userID || d.CarrierID == userID)
}

// FindDeal returns a pointer into deals for id, or nil.
func FindDeal(deals []Deal, id string) *Deal {
	for i := range deals {
		if deals[i].ID == id {
			return &deals[i]
		}
	}
	return nil
}
