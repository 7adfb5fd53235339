package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestOnVacationAt(t *testing.T) {
	emp := Employee{
		VacationStart: date(2025, time.July, 10),
		VacationEnd:   date(2025, time.July, 20),
	}

	cases := []struct {
		name string
		ref  time.Time
		want bool
	}{
		{"before window", time.Date(2025, time.July, 9, 23, 59, 0, 0, time.Local), false},
		{"first day midnight", time.Date(2025, time.July, 10, 0, 0, 0, 0, time.Local), true},
		{"middle of window", time.Date(2025, time.July, 15, 12, 0, 0, 0, time.Local), true},
		{"last day evening", time.Date(2025, time.July, 20, 23, 59, 59, 0, time.Local), true},
		{"day after window", time.Date(2025, time.July, 21, 0, 0, 0, 0, time.Local), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, emp.OnVacationAt(c.ref))
		})
	}
}

func TestOnVacationAtWithoutWindow(t *testing.T) {
	assert.False(t, Employee{}.OnVacationAt(time.Now()))
	assert.False(t, Employee{VacationStart: date(2025, time.July, 10)}.OnVacationAt(time.Now()))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusVacation, StatusSick, StatusAway, StatusFired} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, Status("retired").Valid())
	assert.False(t, Status("").Valid())
}
