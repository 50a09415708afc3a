package entity

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Passenger struct {
	BaseSimple
	Name    string `db:"name"`
	Age     int    `db:"age"`
	Gender  Gender `db:"gender"`
	IDProof string `db:"id_proof"`
}
