package response

type StationStatus struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Distance  string `json:"distance"`
	Status    string `json:"status"` // completed | current | upcoming
}

type TrainStatusResponse struct {
	Name           string          `json:"name"`
	Number         string          `json:"number"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	CurrentStation string          `json:"current_station"`
	NextStation    string          `json:"next_station"`
	Delay          int             `json:"delay"`
	Stations       []StationStatus `json:"stations"`
}
