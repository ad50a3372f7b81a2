package insight

import (
	"reflect"
	"testing"
)

func TestDeriveSuggestions_LookupTable(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "stress tag",
			tags: []string{"stress"},
			want: []string{"Consider trying relaxation techniques like deep breathing or meditation"},
		},
		{
			name: "order preserved",
			tags: []string{"headache", "sleep"},
			want: []string{
				"Stay hydrated and maintain regular sleep schedule to prevent headaches",
				"Establish a consistent bedtime routine and limit screen time before bed",
			},
		},
		{
			name: "unknown tags skipped",
			tags: []string{"fever", "tired", "stomach"},
			want: []string{"Ensure adequate sleep and consider your nutrition and hydration levels"},
		},
		{
			name: "no tags",
			tags: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSuggestions(tt.tags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveSuggestions(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}
