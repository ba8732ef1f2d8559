package model

import "testing"

func TestCarDisplayName(t *testing.T) {
	car := Car{Make: "Honda", Model: "Civic", Nickname: "Daily"}
	if got := car.DisplayName(); got != "Daily" {
		t.Errorf("expected nickname, got %q", got)
	}

	car.Nickname = ""
	if got := car.DisplayName(); got != "Honda Civic" {
		t.Errorf("expected make and model fallback, got %q", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPlanned, StatusInProgress, StatusComplete} {
		if !ValidStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "Done", "planned", "complete"} {
		if ValidStatus(status) {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}
