package entity

type SeatClass string

const (
	SeatClassFirstAC  SeatClass = "1st-ac"
	SeatClassSecondAC SeatClass = "2nd-ac"
	SeatClassThirdAC  SeatClass = "3rd-ac"
	SeatClassSleeper  SeatClass = "sleeper"
	SeatClassGeneral  SeatClass = "general"
)

// SeatClasses urutan tampil di halaman hasil pencarian
var SeatClasses = []SeatClass{
	SeatClassFirstAC,
	SeatClassSecondAC,
	SeatClassThirdAC,
	SeatClassSleeper,
	SeatClassGeneral,
}

func (c SeatClass) Valid() bool {
	for _, sc := range SeatClasses {
		if sc == c {
			return true
		}
	}
	return false
}

func (c SeatClass) Label() string {
	switch c {
	case SeatClassFirstAC:
		return "1st AC"
	case SeatClassSecondAC:
		return "2nd AC"
	case SeatClassThirdAC:
		return "3rd AC"
	case SeatClassSleeper:
		return "Sleeper"
	case SeatClassGeneral:
		return "General"
	}
	return string(c)
}

// Coach kode gerbong per kelas
func (c SeatClass) Coach() string {
	switch c {
	case SeatClassFirstAC:
		return "H1"
	case SeatClassSecondAC:
		return "A1"
	case SeatClassThirdAC:
		return "B1"
	case SeatClassSleeper:
		return "S1"
	}
	return "GN"
}
