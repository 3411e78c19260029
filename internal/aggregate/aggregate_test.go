package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []*database.Expense {
	return []*database.Expense{
		{Title: "Toner", Amount: 100, Category: "Office Supplies", Department: database.RoleHR, Date: day(2024, time.January, 5)},
		{Title: "Laptop", Amount: 200, Category: "Equipment & Hardware", Department: database.RoleIT, Date: day(2024, time.January, 20)},
		{Title: "Training", Amount: 300, Category: "Training & Development", Department: database.RoleHR, Date: day(2024, time.February, 1)},
	}
}

func TestByDepartment(t *testing.T) {
	got := ByDepartment(fixture())
	assert.Equal(t, Stat{Count: 2, TotalAmount: 400}, got[database.RoleHR])
	assert.Equal(t, Stat{Count: 1, TotalAmount: 200}, got[database.RoleIT])
	assert.Len(t, got, 2)
}

func TestByMonth(t *testing.T) {
	got := ByMonth(fixture())
	assert.Len(t, got, 2)

	jan := got["2024-01"]
	assert.Equal(t, 2, jan.Count)
	assert.Equal(t, float64(300), jan.TotalAmount)
	assert.Equal(t, Stat{Count: 1, TotalAmount: 100}, jan.ByDepartment[database.RoleHR])
	assert.Equal(t, Stat{Count: 1, TotalAmount: 200}, jan.ByDepartment[database.RoleIT])

	feb := got["2024-02"]
	assert.Equal(t, 1, feb.Count)
	assert.Equal(t, float64(300), feb.TotalAmount)
}

func TestByCategory(t *testing.T) {
	got := ByCategory(fixture())
	assert.Len(t, got, 3)

	supplies := got["Office Supplies"]
	assert.Equal(t, 1, supplies.Count)
	assert.Equal(t, float64(100), supplies.TotalAmount)
	assert.InDelta(t, 100.0/600.0*100, supplies.PercentageOfTotal, 1e-9)

	var pctSum float64
	for _, s := range got {
		pctSum += s.PercentageOfTotal
	}
	assert.InDelta(t, 100, pctSum, 1e-9)
}

func TestByCategory_ZeroTotal(t *testing.T) {
	got := ByCategory(nil)
	assert.Empty(t, got)
}

func TestReducersArePure(t *testing.T) {
	in := fixture()
	first := ByDepartment(in)
	second := ByDepartment(in)
	assert.Equal(t, first, second)

	assert.Equal(t, ByMonth(in), ByMonth(in))
	assert.Equal(t, ByCategory(in), ByCategory(in))

	// input untouched
	assert.Equal(t, float64(100), in[0].Amount)
	assert.Len(t, in, 3)
}

func TestTotalsAgreeAcrossReducers(t *testing.T) {
	in := fixture()
	total := Total(in)

	var deptSum, catSum, monthSum float64
	for _, s := range ByDepartment(in) {
		deptSum += s.TotalAmount
	}
	for _, s := range ByCategory(in) {
		catSum += s.TotalAmount
	}
	for _, s := range ByMonth(in) {
		monthSum += s.TotalAmount
	}

	assert.True(t, math.Abs(deptSum-total.TotalAmount) < 1e-9)
	assert.True(t, math.Abs(catSum-total.TotalAmount) < 1e-9)
	assert.True(t, math.Abs(monthSum-total.TotalAmount) < 1e-9)
	assert.Equal(t, 3, total.Count)
	assert.Equal(t, float64(600), total.TotalAmount)
}
