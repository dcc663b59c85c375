package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioVitaBR/studio-manager/internal/dto"
	"github.com/StudioVitaBR/studio-manager/internal/models"
	ucAppointment "github.com/StudioVitaBR/studio-manager/internal/usecase/appointment"
)

func customerBody() map[string]any {
	return map[string]any{
		"name":          "Ana Souza",
		"cpf":           "123.456.789-00",
		"email":         "ana@example.com",
		"phone":         "11999990000",
		"address":       "Rua das Flores, 10",
		"birth_date":    "1990-05-10",
		"medical_notes": "Nenhuma restrição",
	}
}

func TestCustomerCreateThenGetRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", customerBody())
	requireStatus(t, w, http.StatusCreated)

	created := decode[models.Customer](t, w)
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/customers/"+created.ID, nil)
	requireStatus(t, w, http.StatusOK)

	got := decode[models.Customer](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana Souza", got.Name)
	assert.Equal(t, "123.456.789-00", got.CPF)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "11999990000", got.Phone)
	assert.Equal(t, "Rua das Flores, 10", got.Address)
	assert.Equal(t, "1990-05-10", got.BirthDate)
	assert.Equal(t, "Nenhuma restrição", got.MedicalNotes)
}

func TestCustomerCreateRejectsMissingFieldAndLeavesStoreUntouched(t *testing.T) {
	r, db := newTestServer(t)

	body := customerBody()
	body["email"] = ""

	w := doJSON(t, r, http.MethodPost, "/api/customers", body)
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCustomerUpdateIsFullReplace(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", customerBody())
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Customer](t, w)

	body := customerBody()
	body["name"] = "Ana Paula Souza"
	delete(body, "medical_notes")

	w = doJSON(t, r, http.MethodPut, "/api/customers/"+created.ID, body)
	requireStatus(t, w, http.StatusOK)

	updated := decode[models.Customer](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Paula Souza", updated.Name)
	assert.Empty(t, updated.MedicalNotes) // full replace, não merge
}

func TestCustomerNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/customers/nope", nil)
	requireStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodPut, "/api/customers/nope", customerBody())
	requireStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodDelete, "/api/customers/nope", nil)
	requireStatus(t, w, http.StatusNotFound)
}

// Apagar cliente referenciado por agendamento funciona, e a listagem de
// agendamentos passa a exibir o fallback em vez de falhar.
func TestCustomerDeleteWithDanglingAppointment(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", customerBody())
	requireStatus(t, w, http.StatusCreated)
	customer := decode[models.Customer](t, w)

	w = doJSON(t, r, http.MethodPost, "/api/appointments", map[string]any{
		"customer_id":  customer.ID,
		"package_id":   "p1",
		"date":         "2026-08-27",
		"time":         "10:00",
		"service_type": "Pilates",
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodDelete, "/api/customers/"+customer.ID, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/appointments", nil)
	requireStatus(t, w, http.StatusOK)

	list := decode[[]dto.AppointmentListDTO](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, ucAppointment.FallbackCustomerName, list[0].CustomerName)
	assert.Equal(t, ucAppointment.FallbackPackageName, list[0].PackageName)
}
