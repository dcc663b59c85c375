package jsontypes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decimal aceita número JSON ou string numérica ("49.90"). Valor não
// parseável é erro de unmarshal, nunca zero silencioso.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	str := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if str == "" || str == "null" {
		return fmt.Errorf("invalid decimal %q", string(data))
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", str)
	}

	*d = Decimal(v)
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(d))
}

func (d Decimal) Float64() float64 {
	return float64(d)
}

// Integer aceita número JSON ou string ("30"). Campos opcionais usam
// *Integer; null chega como ponteiro nil.
type Integer int

func (i *Integer) UnmarshalJSON(data []byte) error {
	str := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if str == "" || str == "null" {
		return fmt.Errorf("invalid integer %q", string(data))
	}

	v, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("invalid integer %q", str)
	}

	*i = Integer(v)
	return nil
}

func (i Integer) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}

func (i Integer) Int() int {
	return int(i)
}

// IntPtr converte *Integer para o *int armazenado nos modelos.
func IntPtr(i *Integer) *int {
	if i == nil {
		return nil
	}
	v := i.Int()
	return &v
}
