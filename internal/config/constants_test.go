package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" || DBFileName == "" {
		t.Fatalf("AppName and DBFileName should not be empty")
	}
	if ExportFilePrefix != "cartel_voces_visuales_" || UntitledFileStem != "sin_titulo" {
		t.Fatalf("unexpected export file naming")
	}
	if LandingPreviewLength != 80 || EditorPreviewLength != 120 {
		t.Fatalf("unexpected preview lengths")
	}
	if TitleWordGuideline != 21 {
		t.Fatalf("TitleWordGuideline = %d", TitleWordGuideline)
	}
	if !(PaceMin < PaceDefault && PaceDefault < PaceMax) {
		t.Fatalf("pace default %d outside [%d,%d]", PaceDefault, PaceMin, PaceMax)
	}
	if (PaceDefault-PaceMin)%PaceStep != 0 {
		t.Fatalf("pace default not reachable by PaceStep")
	}
}
