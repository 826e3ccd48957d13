package entity

// Train describes a scheduled service between two cities. Prices are stored
// in whole currency units, matching the fare table.
type Train struct {
	ID            int64
	TrainNo       string // Public train number, unique.
	TrainName     string
	FromCity      string
	ToCity        string
	NoOfSeats     int
	ACPrice       int64
	NonACPrice    int64
	DepartureTime string // Display string, e.g. "06:30".
	ImageURL      string
}
