package models

import "testing"

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryAbecedario, CategoryNumeros, CategorySaludos, CategoryOtros} {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"", "verbos", "Abecedario", "ABECEDARIO"} {
		if ValidCategory(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}
