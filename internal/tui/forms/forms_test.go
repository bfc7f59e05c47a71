package forms

import (
	"testing"

	"github.com/julianstephens/enough/internal/models"
)

func TestNewOnboardingFormDefaults(t *testing.T) {
	fm := &OnboardingFormModel{}
	if NewOnboardingForm(fm) == nil {
		t.Fatal("nil form")
	}
	if fm.Capacity != 100 || fm.Style != models.VisualizationCircle {
		t.Errorf("defaults = %+v", fm)
	}

	kept := &OnboardingFormModel{Capacity: 70, Style: models.VisualizationCup}
	NewOnboardingForm(kept)
	if kept.Capacity != 70 || kept.Style != models.VisualizationCup {
		t.Errorf("existing answers overwritten: %+v", kept)
	}
}

func TestCapacityOptionsCoverRange(t *testing.T) {
	opts := capacityOptions()
	if len(opts) != 11 {
		t.Fatalf("expected 11 options, got %d", len(opts))
	}
	if opts[0].Value != 50 || opts[0].Key != "50 (gentle)" {
		t.Errorf("first option = %+v", opts[0])
	}
	if opts[len(opts)-1].Key != "150 (full)" {
		t.Errorf("last option = %+v", opts[len(opts)-1])
	}
}

func TestTrimName(t *testing.T) {
	if got := TrimName("  a   b \t c "); got != "a b c" {
		t.Errorf("TrimName = %q", got)
	}
}
