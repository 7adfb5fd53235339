package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29", "1999-12-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "31-01-2025", "2025/01/31", "", "hoje"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "06:30", "23:59"}
	invalid := []string{"24:00", "6:3", "06:60", "0630", ""}
	for _, v := range valid {
		if !IsValidTimeOfDay(v) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidTimeOfDay(v) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", v)
		}
	}
}

func TestIsValidShift(t *testing.T) {
	for _, shift := range Shifts {
		if !IsValidShift(shift) {
			t.Errorf("IsValidShift(%q) = false, want true", shift)
		}
	}
	for _, shift := range []string{"manhã", "Madrugada", "", "Manha"} {
		if IsValidShift(shift) {
			t.Errorf("IsValidShift(%q) = true, want false", shift)
		}
	}
}

func TestIsValidRegistrationID(t *testing.T) {
	valid := []string{"1", "042", "1234567890"}
	invalid := []string{"", "12345678901", "12a", "1.5", "-1", " 12"}
	for _, id := range valid {
		if !IsValidRegistrationID(id) {
			t.Errorf("IsValidRegistrationID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidRegistrationID(id) {
			t.Errorf("IsValidRegistrationID(%q) = true, want false", id)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	if !IsValidWeekday("Monday") {
		t.Error("IsValidWeekday(Monday) = false, want true")
	}
	if IsValidWeekday("Segunda") {
		t.Error("IsValidWeekday(Segunda) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "shift", Message: "invalid shift"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() != "name: name is required; shift: invalid shift" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
