package util

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

func TestStringList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "absent field", values: nil, want: []string{}},
		{name: "single scalar", values: []string{"forklift"}, want: []string{"forklift"}},
		{name: "repeated field", values: []string{"forklift", "crane"}, want: []string{"forklift", "crane"}},
		{name: "json array", values: []string{`["forklift","crane"]`}, want: []string{"forklift", "crane"}},
		{name: "blank scalar dropped", values: []string{"  "}, want: []string{}},
		{name: "bracket but not json", values: []string{"[not json"}, want: []string{"[not json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringList(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringList(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestStringListJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
		want []string
	}{
		{name: "absent field", body: `{}`, key: "skills", want: []string{}},
		{name: "single scalar", body: `{"skills":"welding"}`, key: "skills", want: []string{"welding"}},
		{name: "list", body: `{"skills":["welding","rigging"]}`, key: "skills", want: []string{"welding", "rigging"}},
		{name: "numeric scalar", body: `{"skills":7}`, key: "skills", want: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringListJSON(gjson.Get(tt.body, tt.key))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringListJSON(%s) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}
