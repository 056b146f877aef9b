package events

// DropPayload describes a released planet
type DropPayload struct {
	Rank int
	X, Y float64
}

// MergePayload describes one merge: two planets of Consumed became one of Produced at (X, Y)
type MergePayload struct {
	Consumed int
	Produced int
	X, Y     float64
}

// ScorePayload carries the score at a round milestone
type ScorePayload struct {
	Score int
}
