package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioVitaBR/studio-manager/internal/models"
)

func TestPackageCreateAcceptsStringPrice(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/packages", map[string]any{
		"name":        "Pilates Mensal",
		"type":        "monthly",
		"price":       "49.90",
		"description": "Acesso mensal às aulas de Pilates",
		"duration_days": 30,
	})
	requireStatus(t, w, http.StatusCreated)

	created := decode[models.Package](t, w)
	assert.Equal(t, 49.9, created.Price)
	require.NotNil(t, created.DurationDays)
	assert.Equal(t, 30, *created.DurationDays)
}

func TestPackageCreateDefaultsTypeToMonthly(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/packages", map[string]any{
		"name":        "Avaliação Física",
		"price":       80,
		"description": "Avaliação completa",
	})
	requireStatus(t, w, http.StatusCreated)

	created := decode[models.Package](t, w)
	assert.Equal(t, models.PackageTypeMonthly, created.Type)
}

func TestPackageCreateRejectsBadPriceAndLeavesStoreUntouched(t *testing.T) {
	r, db := newTestServer(t)

	cases := []map[string]any{
		{"name": "X", "price": "abc", "description": "d"},
		{"name": "X", "price": -10, "description": "d"},
		{"name": "X", "description": "d"}, // sem price
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/packages", body)
		requireStatus(t, w, http.StatusBadRequest)
	}

	var count int64
	require.NoError(t, db.Model(&models.Package{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPackageCreateRejectsUnknownType(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/packages", map[string]any{
		"name":        "X",
		"type":        "weekly",
		"price":       10,
		"description": "d",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decode[map[string]string](t, w)
	assert.Equal(t, "invalid_package_type", body["error_code"])
}

func TestPackageUpdateIsIdempotent(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/packages", map[string]any{
		"name":        "Pilates Mensal",
		"type":        "monthly",
		"price":       150,
		"description": "d",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Package](t, w)

	update := map[string]any{
		"name":        "Pilates Trimestral",
		"type":        "monthly",
		"price":       "400.00",
		"description": "d2",
		"duration_days": 90,
	}

	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodPut, "/api/packages/"+created.ID, update)
		requireStatus(t, w, http.StatusOK)
	}

	updated := decode[models.Package](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Pilates Trimestral", updated.Name)
	assert.Equal(t, 400.0, updated.Price)
	require.NotNil(t, updated.DurationDays)
	assert.Equal(t, 90, *updated.DurationDays)
	assert.Nil(t, updated.SessionsIncluded) // full replace, não merge
}

func TestPackageDeleteThenGetIs404(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/packages", map[string]any{
		"name": "Massagem Avulsa", "type": "procedure", "price": 120, "description": "d",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decode[models.Package](t, w)

	w = doJSON(t, r, http.MethodDelete, "/api/packages/"+created.ID, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/packages/"+created.ID, nil)
	requireStatus(t, w, http.StatusNotFound)
}
