package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func TestOrders(t *testing.T) {
	a := models.Order{
		CustomerID: "p1",
		Status:     "processing",
		Items:      []models.OrderItem{{Name: "Ibuprofen 400mg", Quantity: 1, UnitPrice: 5}},
	}
	a.ID = "o1"

	b := models.Order{
		CustomerID: "p2",
		Status:     "shipped",
		Items:      []models.OrderItem{{Name: "Bandages", Quantity: 3, UnitPrice: 2}},
	}
	b.ID = "o2"

	in := []models.Order{a, b}

	out := Orders(in, OrderFilter{CustomerID: "p1"})
	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].ID)

	out = Orders(in, OrderFilter{Status: orderdomain.StatusShipped})
	require.Len(t, out, 1)
	assert.Equal(t, "o2", out[0].ID)

	// Search reaches into item names.
	out = Orders(in, OrderFilter{Search: "ibuprofen"})
	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].ID)

	out = Orders(in, OrderFilter{Search: "o2"})
	require.Len(t, out, 1)
	assert.Equal(t, "o2", out[0].ID)
}

func TestPrescriptionsSearchCoversMedications(t *testing.T) {
	a := models.Prescription{
		PatientID:   "p1",
		Status:      "active",
		Diagnosis:   "Hypertension",
		Medications: []models.Medication{{Name: "Lisinopril"}},
	}
	a.ID = "rx1"

	b := models.Prescription{
		PatientID:   "p1",
		Status:      "expired",
		Diagnosis:   "Infection",
		Medications: []models.Medication{{Name: "Amoxicillin"}},
	}
	b.ID = "rx2"

	in := []models.Prescription{a, b}

	out := Prescriptions(in, PrescriptionFilter{Search: "lisinopril"})
	require.Len(t, out, 1)
	assert.Equal(t, "rx1", out[0].ID)

	out = Prescriptions(in, PrescriptionFilter{PatientID: "p1", Status: "expired"})
	require.Len(t, out, 1)
	assert.Equal(t, "rx2", out[0].ID)
}
