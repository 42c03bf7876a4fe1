package model

import "time"

// Notice is notification content handed to a dispatcher. The core only
// builds title/body; whether it ends up as a local alert, a scheduled system
// notification or an email is the dispatcher's business.
type Notice struct {
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}
