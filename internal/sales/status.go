package sales

type Status string

const (
	StatusLunas   Status = "Lunas"   // paid in full
	StatusCicilan Status = "Cicilan" // installment
	StatusPending Status = "Pending"
)

var validStatus = map[Status]bool{
	StatusLunas:   true,
	StatusCicilan: true,
	StatusPending: true,
}

func (s Status) Valid() bool {
	return validStatus[s]
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}
