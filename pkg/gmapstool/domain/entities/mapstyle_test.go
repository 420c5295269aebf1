package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const jsonStyle = `[
  {"featureType": "road", "elementType": "geometry", "stylers": [{"visibility": "simplified", "color": "#303748"}, {"weight": 1.5}]},
  {"stylers": [{"saturation": -100}]}
]`

const yamlStyle = `
- featureType: road
  elementType: geometry
  stylers:
    - visibility: simplified
      color: "#303748"
    - weight: 1.5
- stylers:
    - saturation: -100
`

func TestStylers_UnmarshalJSON(t *testing.T) {
	var rules []entities.StyleRule
	require.NoError(t, json.Unmarshal([]byte(jsonStyle), &rules))
	require.Len(t, rules, 2)

	assert.Equal(t, "road", rules[0].FeatureType)
	assert.Equal(t, "geometry", rules[0].ElementType)
	assert.Equal(t, entities.Stylers{
		{Key: "visibility", Value: "simplified"},
		{Key: "color", Value: "#303748"},
		{Key: "weight", Value: json.Number("1.5")},
	}, rules[0].Stylers)

	assert.Empty(t, rules[1].FeatureType)
	assert.Equal(t, entities.Stylers{{Key: "saturation", Value: json.Number("-100")}}, rules[1].Stylers)
}

func TestStylers_UnmarshalJSONInvalid(t *testing.T) {
	var rules []entities.StyleRule
	assert.Error(t, json.Unmarshal([]byte(`[{"stylers": {"color": "#303748"}}]`), &rules))
	assert.Error(t, json.Unmarshal([]byte(`[{"stylers": ["#303748"]}]`), &rules))
}

func TestStylers_UnmarshalYAML(t *testing.T) {
	var rules []entities.StyleRule
	require.NoError(t, yaml.Unmarshal([]byte(yamlStyle), &rules))
	require.Len(t, rules, 2)

	assert.Equal(t, "road", rules[0].FeatureType)
	assert.Equal(t, entities.Stylers{
		{Key: "visibility", Value: "simplified"},
		{Key: "color", Value: "#303748"},
		{Key: "weight", Value: 1.5},
	}, rules[0].Stylers)
	assert.Equal(t, entities.Stylers{{Key: "saturation", Value: -100}}, rules[1].Stylers)
}

func TestStyler_MarshalJSON(t *testing.T) {
	rules := []entities.StyleRule{{
		FeatureType: "water",
		Stylers: entities.Stylers{
			{Key: "color", Value: "#0000ff"},
			{Key: "lightness", Value: 10},
		},
	}}

	data, err := json.Marshal(rules)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"featureType":"water","stylers":[{"color":"#0000ff"},{"lightness":10}]}]`, string(data))
}
