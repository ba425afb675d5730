package calculator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoofType(t *testing.T) {
	for _, rt := range RoofTypes() {
		parsed, err := ParseRoofType(rt.String())
		require.NoError(t, err)
		assert.Equal(t, rt, parsed)
	}

	parsed, err := ParseRoofType(" Concrete ")
	require.NoError(t, err)
	assert.Equal(t, RoofTypeConcrete, parsed)

	_, err = ParseRoofType("thatch")
	require.ErrorIs(t, err, ErrUnknownRoofType)
}

func TestParseInsulation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Insulation
		wantErr error
		errText string
	}{
		{name: "empty is none", input: "", want: NoInsulation()},
		{name: "none", input: "None", want: NoInsulation()},
		{name: "xps", input: "XPS-100", want: Layer(MaterialPolystyreneFoam, 100)},
		{name: "pu", input: "pu-80", want: Layer(MaterialPolyurethaneFoam, 80)},
		{name: "fractional thickness", input: "xps-62.5", want: Layer(MaterialPolystyreneFoam, 62.5)},
		{name: "unknown material", input: "wool-100", wantErr: ErrUnknownMaterial},
		{name: "zero thickness", input: "xps-0", wantErr: ErrInvalidThickness},
		{name: "NaN thickness", input: "xps-nan", wantErr: ErrInvalidThickness},
		{name: "infinite thickness", input: "pu-inf", wantErr: ErrInvalidThickness},
		{name: "negative infinite thickness", input: "xps--inf", wantErr: ErrInvalidThickness},
		{name: "missing thickness", input: "xps", errText: "expected none or material-thickness"},
		{name: "bad number", input: "pu-abc", errText: "invalid insulation thickness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInsulation(tt.input)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInsulation_String(t *testing.T) {
	assert.Equal(t, "none", NoInsulation().String())
	assert.Equal(t, "xps-50", Layer(MaterialPolystyreneFoam, 50).String())
	assert.Equal(t, "pu-62.5", Layer(MaterialPolyurethaneFoam, 62.5).String())

	for _, preset := range RoofInsulationPresets() {
		parsed, err := ParseInsulation(preset.String())
		require.NoError(t, err)
		assert.Equal(t, preset, parsed)
	}
}

func TestInsulation_JSONIsTextTag(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.RoofInsulation = Layer(MaterialPolystyreneFoam, 100)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"roof_insulation":"xps-100"`)
	assert.Contains(t, string(data), `"wall_insulation":"none"`)
	assert.NotContains(t, string(data), "thickness_mm")

	var decoded Configuration
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestEERBands(t *testing.T) {
	assert.InDelta(t, 9.0, EERBandOld.Value(), 1e-12)
	assert.InDelta(t, 11.0, EERBandStandard.Value(), 1e-12)
	assert.InDelta(t, 13.0, EERBandHigh.Value(), 1e-12)

	band, err := ParseEERBand("HIGH")
	require.NoError(t, err)
	assert.Equal(t, EERBandHigh, band)

	_, err = ParseEERBand("ancient")
	require.ErrorIs(t, err, ErrUnknownEERBand)
}

func TestResolveEER(t *testing.T) {
	assert.InDelta(t, 9.0, ResolveEER(EERBandOld, 0), 1e-12)
	assert.InDelta(t, 12.5, ResolveEER(EERBandOld, 12.5), 1e-12)
}

func TestConductivity_None(t *testing.T) {
	_, err := Conductivity(MaterialNone)
	require.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestRoofTable(t *testing.T) {
	tests := []struct {
		roof       RoofType
		multiplier float64
		baseR      float64
	}{
		{RoofTypeMetal, 1.00, 0.17},
		{RoofTypeConcrete, 0.95, 0.50},
		{RoofTypeBitumen, 1.05, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.roof.String(), func(t *testing.T) {
			mult, err := RoofMultiplier(tt.roof)
			require.NoError(t, err)
			assert.InDelta(t, tt.multiplier, mult, 1e-9)

			baseR, err := RoofBaseResistance(tt.roof)
			require.NoError(t, err)
			assert.InDelta(t, tt.baseR, baseR, 1e-9)
		})
	}

	_, err := RoofBaseResistance(RoofTypeUnknown)
	require.ErrorIs(t, err, ErrUnknownRoofType)
}
