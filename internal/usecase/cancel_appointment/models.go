package cancel_appointment

// Request identifies the journey whose appointment is cancelled
type Request struct {
	JourneyID string
}

// Response reports the cancellation outcome
type Response struct {
	JourneyID      string `json:"journeyId"`
	IntentsRemoved int    `json:"intentsRemoved"`
}
