package ui

import (
	"math"
	"testing"
)

func TestFieldRangeNormalize(t *testing.T) {
	tests := []struct {
		name string
		fr   FieldRange
		v    float32
		want float32
	}{
		{"min", DefaultRange(), 0, 0},
		{"mid", DefaultRange(), 0.25, 0.25},
		{"max", DefaultRange(), 1, 1},
		{"below", DefaultRange(), -3, 0},
		{"above", DefaultRange(), 7, 1},
		{"offset", FieldRange{Min: 2, Max: 6}, 3, 0.25},
		{"empty", FieldRange{Min: 1, Max: 1}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fr.Normalize(tt.v); math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFieldText(t *testing.T) {
	data := HUDData{Points: 18, MaxSpeed: 0.125, Shape: "ring"}

	for _, sd := range StatusSections() {
		for _, fd := range sd.Fields {
			switch fd.ID {
			case "points":
				if got := fieldText(fd, data); got != "18" {
					t.Errorf("points = %q, want 18", got)
				}
			case "max_speed":
				if got := fieldText(fd, data); got != "0.125" {
					t.Errorf("max_speed = %q, want 0.125", got)
				}
			case "shape":
				if got := fieldText(fd, data); got != "ring" {
					t.Errorf("shape = %q, want ring", got)
				}
			case "active":
				if got := fieldText(fd, data); got != "no" {
					t.Errorf("active = %q, want no", got)
				}
			}
		}
	}

	if got := fieldText(FieldDescriptor{}, data); got != "" {
		t.Errorf("field with no getter = %q, want empty", got)
	}
}

func TestStatusSectionsToleratesOtherData(t *testing.T) {
	for _, sd := range StatusSections() {
		for _, fd := range sd.Fields {
			if fd.Getter != nil {
				_ = fd.Getter(nil)
			}
			if fd.TextGetter != nil {
				_ = fd.TextGetter("not hud data")
			}
		}
	}
}

func TestSectionHeight(t *testing.T) {
	r := NewRenderer()
	lh := r.Theme.LineHeight

	sd := SectionDescriptor{
		Title: "T",
		Fields: []FieldDescriptor{
			{Widget: WidgetText},
			{Widget: WidgetBar},
			{Widget: WidgetSpacer},
			{Widget: WidgetText, Visible: func(any) bool { return false }},
		},
	}
	want := lh + lh + (lh + 2) + 6 + 4
	if got := r.SectionHeight(sd, nil); got != want {
		t.Errorf("SectionHeight = %d, want %d", got, want)
	}

	sd.Visible = func(any) bool { return false }
	if got := r.SectionHeight(sd, nil); got != 0 {
		t.Errorf("hidden SectionHeight = %d, want 0", got)
	}
}
