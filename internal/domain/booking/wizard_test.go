package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautylink/salon-scheduler/internal/domain/schedule"
	"github.com/beautylink/salon-scheduler/internal/httperr"
)

var offered = []schedule.TimeOfDay{
	9 * 60,
	9*60 + 30,
	10 * 60,
}

func contact() Contact {
	return Contact{Name: "Marie Dupont", Email: "marie@example.com"}
}

// percorre o fluxo feliz até a etapa de contato
func wizardAtContact(t *testing.T) Wizard {
	t.Helper()

	w, err := New().SelectService(1, 30)
	require.NoError(t, err)

	w, err = w.SelectEmployee(nil)
	require.NoError(t, err)

	w, err = w.SelectSlot("2025-10-23", 9*60+30, offered)
	require.NoError(t, err)

	return w
}

func TestWizard_HappyPath(t *testing.T) {
	w := wizardAtContact(t)

	w, err := w.EnterContact(contact())
	require.NoError(t, err)

	w, err = w.Confirm()
	require.NoError(t, err)

	assert.Equal(t, StateConfirmed, w.State)
	assert.Equal(t, uint(1), w.ServiceID)
	assert.Equal(t, "2025-10-23", w.Date)
	assert.Equal(t, "09:30", w.Time.String())
}

func TestWizard_NoPreferenceVsSpecific(t *testing.T) {
	w, err := New().SelectService(1, 30)
	require.NoError(t, err)

	// nil = "sem preferência", escolha explícita e distinta de "não escolhi"
	noPref, err := w.SelectEmployee(nil)
	require.NoError(t, err)
	assert.Equal(t, EmployeeNoPreference, noPref.Employee)
	assert.Nil(t, noPref.EmployeeID)

	id := uint(7)
	specific, err := w.SelectEmployee(&id)
	require.NoError(t, err)
	assert.Equal(t, EmployeeSpecific, specific.Employee)
	require.NotNil(t, specific.EmployeeID)
	assert.Equal(t, uint(7), *specific.EmployeeID)

	assert.Equal(t, EmployeeUnset, New().Employee)
}

func TestWizard_SlotMustBeOffered(t *testing.T) {
	w, err := New().SelectService(1, 30)
	require.NoError(t, err)
	w, err = w.SelectEmployee(nil)
	require.NoError(t, err)

	_, err = w.SelectSlot("2025-10-23", 11*60, offered)
	assert.True(t, httperr.IsBusiness(err, "slot_not_available"))

	_, err = w.SelectSlot("", 9*60, offered)
	assert.True(t, httperr.IsBusiness(err, "date_required"))
}

func TestWizard_StepOrderEnforced(t *testing.T) {
	w := New()

	_, err := w.SelectEmployee(nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	_, err = w.SelectSlot("2025-10-23", 9*60, offered)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	_, err = w.EnterContact(contact())
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	_, err = w.Confirm()
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestWizard_ContactValidation(t *testing.T) {
	w := wizardAtContact(t)

	_, err := w.EnterContact(Contact{Email: "marie@example.com"})
	assert.True(t, httperr.IsBusiness(err, "client_name_required"))

	_, err = w.EnterContact(Contact{Name: "Marie", Email: "not-an-email"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

func TestWizard_Back(t *testing.T) {
	w := wizardAtContact(t)
	assert.Equal(t, StateEnteringContactInfo, w.State)

	w, err := w.Back()
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDateTime, w.State)

	w, err = w.Back()
	require.NoError(t, err)
	assert.Equal(t, StateSelectingEmployee, w.State)

	w, err = w.Back()
	require.NoError(t, err)
	assert.Equal(t, StateSelectingService, w.State)

	_, err = w.Back()
	assert.True(t, httperr.IsBusiness(err, "cannot_go_back"))
}

func TestWizard_NoBackAfterConfirm(t *testing.T) {
	w := wizardAtContact(t)

	w, err := w.EnterContact(contact())
	require.NoError(t, err)
	w, err = w.Confirm()
	require.NoError(t, err)

	_, err = w.Back()
	assert.True(t, httperr.IsBusiness(err, "cannot_go_back"))
}

func TestWizard_Immutable(t *testing.T) {
	base, err := New().SelectService(1, 30)
	require.NoError(t, err)

	_, err = base.SelectEmployee(nil)
	require.NoError(t, err)

	// a transição devolve uma cópia, o valor original não muda
	assert.Equal(t, StateSelectingEmployee, base.State)
}

func TestWizard_ServiceRequired(t *testing.T) {
	_, err := New().SelectService(0, 30)
	assert.True(t, httperr.IsBusiness(err, "service_required"))

	_, err = New().SelectService(1, 0)
	assert.True(t, httperr.IsBusiness(err, "service_required"))
}
