package appointment

// Vocabulário fixo de tipos de atendimento oferecidos pelo estúdio.
var ServiceTypes = []string{
	"Pilates",
	"Musculação",
	"Funcional",
	"Estética",
	"Massagem",
	"Fisioterapia",
}

func IsServiceType(s string) bool {
	for _, st := range ServiceTypes {
		if s == st {
			return true
		}
	}
	return false
}
