package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionsForRole_AdminVeTodo(t *testing.T) {
	assert.Equal(t, AllSections, SectionsForRole(RoleAdmin))
}

func TestSectionsForRole_CashierSoloFacturacion(t *testing.T) {
	sections := SectionsForRole(RoleCashier)
	assert.Equal(t, []string{SectionBilling}, sections)
	assert.NotContains(t, sections, SectionSettings)
	assert.NotContains(t, sections, SectionUsers)
}

func TestSectionsForRole_RolDesconocido(t *testing.T) {
	assert.Nil(t, SectionsForRole("superuser"))
	assert.Nil(t, SectionsForRole(""))
}

func TestParseWorkOrderStatus(t *testing.T) {
	for _, s := range WorkOrderStatuses {
		got, err := ParseWorkOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseWorkOrderStatus("archivado")
	assert.Error(t, err, "un estado fuera de la lista cerrada es un error")
}

func TestIsInvoiceable(t *testing.T) {
	order := WorkOrder{Status: StatusInRepair}
	assert.False(t, order.IsInvoiceable())

	order.Status = StatusReady
	assert.True(t, order.IsInvoiceable())

	order.Status = StatusDelivered
	assert.True(t, order.IsInvoiceable())
	assert.True(t, order.IsDelivered())
}
