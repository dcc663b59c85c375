package jsontypes

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func parseDate(str string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, str)
	if err != nil {
		// O frontend às vezes manda a data com hora (ISO completo)
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			parsed, err = time.Parse("2006-01-02T15:04:05", str)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid date %q", str)
			}
		}
	}
	return parsed, nil
}

// Date é uma data de calendário, sem hora. Serializa sempre como
// "YYYY-MM-DD", independente do formato aceito na entrada.
type Date struct {
	Value time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "null" || str == "" {
		return nil
	}

	parsed, err := parseDate(str)
	if err != nil {
		return err
	}

	*d = Date{Value: parsed}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Date) String() string {
	return d.Value.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Value.IsZero()
}

// TimeOfDay é um horário local "HH:MM" (segundos aceitos e descartados).
type TimeOfDay struct {
	Value time.Time
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "null" || str == "" {
		return nil
	}

	parsed, err := time.Parse(timeLayout, str)
	if err != nil {
		parsed, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("invalid time %q", str)
		}
	}

	*t = TimeOfDay{Value: parsed}
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t TimeOfDay) String() string {
	return t.Value.Format(timeLayout)
}

func (t TimeOfDay) IsZero() bool {
	return t.Value.IsZero()
}
