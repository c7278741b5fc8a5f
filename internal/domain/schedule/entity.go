package schedule

// Schedule maps an Indonesian weekday name to the students on duty.
type Schedule map[string][]string

// Days in roster order. Saturday and Sunday carry no duty.
var Days = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat"}

// DayName translates an English weekday to the roster key.
var DayName = map[string]string{
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
	"Sunday":    "Minggu",
}
