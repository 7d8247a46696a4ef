package vacation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerDayHours(t *testing.T) {
	// 40 weekly hours over a 5-day week
	assert.Equal(t, "8", PerDayHours(40, 5).String())
	// 30 weekly hours over a 5-day week
	assert.Equal(t, "6", PerDayHours(30, 5).String())
	// uneven split rounds to 2 decimals
	assert.Equal(t, "6.67", PerDayHours(40, 6).String())
	assert.Equal(t, "0", PerDayHours(0, 5).String())
}

func TestBookVacationRequest_Validate(t *testing.T) {
	valid := BookVacationRequest{
		EmployeeID: "emp-1",
		Days:       5,
		StartDate:  "10/02/2025",
		EndDate:    "14/02/2025",
		Type:       "vacaciones",
	}
	assert.NoError(t, valid.Validate())

	t.Run("unpaid type accepted", func(t *testing.T) {
		req := valid
		req.Type = "vacaciones sin goce"
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		req := valid
		req.Type = "licencia"
		assert.Error(t, req.Validate())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := valid
		req.StartDate = "14/02/2025"
		req.EndDate = "10/02/2025"
		assert.Error(t, req.Validate())
	})

	t.Run("days must be positive", func(t *testing.T) {
		req := valid
		req.Days = 0
		assert.Error(t, req.Validate())
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	err := &InsufficientBalanceError{Requested: 10, Remaining: 3}
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "3")
}
