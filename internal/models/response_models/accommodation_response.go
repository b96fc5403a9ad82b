package response_models

type AccommodationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Option       string `json:"option,omitempty"`
	CostPerNight int64  `json:"cost_per_night"`
	BedsLeft     int    `json:"beds_left"`
	SpeakerOnly  bool   `json:"speaker_only"`
}
