package cli_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/cli"
	"github.com/rshade/coolroof/internal/config"
)

func newCalcFlags(t *testing.T, args ...string) (*pflag.FlagSet, *cli.CalculatorParams) {
	t.Helper()
	cmd := cli.NewCalcCmd()
	require.NoError(t, cmd.ParseFlags(args))
	var p cli.CalculatorParams
	p.Area, _ = cmd.Flags().GetFloat64("area")
	p.RoofType, _ = cmd.Flags().GetString("roof-type")
	p.RoofInsulation, _ = cmd.Flags().GetString("roof-insulation")
	p.WallInsulation, _ = cmd.Flags().GetString("wall-insulation")
	p.EERBand, _ = cmd.Flags().GetString("eer-band")
	p.EER, _ = cmd.Flags().GetFloat64("eer")
	p.Price, _ = cmd.Flags().GetFloat64("price")
	p.EmissionFactor, _ = cmd.Flags().GetFloat64("emission-factor")
	p.UnitCost, _ = cmd.Flags().GetFloat64("unit-cost")
	p.Currency, _ = cmd.Flags().GetString("currency")
	return cmd.Flags(), &p
}

func TestResolveDefaults(t *testing.T) {
	setupCLITest(t)

	t.Run("unset flags keep configured values", func(t *testing.T) {
		cfg := config.Default()
		cfg.Defaults.EnergyPrice = 1.1
		cfg.Defaults.RoofType = "concrete"

		fs, p := newCalcFlags(t, "--area", "300")
		d, err := cli.ResolveDefaults(fs, p, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 300.0, d.AreaM2, 1e-9)
		assert.InDelta(t, 1.1, d.EnergyPrice, 1e-9)
		assert.Equal(t, "concrete", d.RoofType)
	})

	t.Run("explicit band clears configured custom eer", func(t *testing.T) {
		cfg := config.Default()
		cfg.Defaults.EER = 15

		fs, p := newCalcFlags(t, "--eer-band", "high")
		d, err := cli.ResolveDefaults(fs, p, cfg)
		require.NoError(t, err)
		assert.Zero(t, d.EER)

		calc, err := d.Calculator()
		require.NoError(t, err)
		assert.InDelta(t, 13.0, calc.EER, 1e-9)
	})

	t.Run("custom eer wins over band", func(t *testing.T) {
		fs, p := newCalcFlags(t, "--eer-band", "old", "--eer", "12.5")
		d, err := cli.ResolveDefaults(fs, p, config.Default())
		require.NoError(t, err)

		calc, err := d.Calculator()
		require.NoError(t, err)
		assert.InDelta(t, 12.5, calc.EER, 1e-9)
	})

	t.Run("negative unit cost", func(t *testing.T) {
		fs, p := newCalcFlags(t, "--unit-cost", "-5")
		_, err := cli.ResolveDefaults(fs, p, config.Default())
		require.ErrorIs(t, err, calculator.ErrNegativeCapex)
	})
}

func TestInputsFromDefaults(t *testing.T) {
	d := config.Default().Defaults
	d.RoofInsulation = "pu-100"
	d.EERBand = "old"
	d.EER = 10

	in, err := cli.InputsFromDefaults(d, false)
	require.NoError(t, err)
	assert.Equal(t, calculator.Layer(calculator.MaterialPolyurethaneFoam, 100), in.RoofInsulation)
	assert.Equal(t, calculator.EERBandOld, in.EERBand)
	assert.InDelta(t, 10.0, in.CustomEER, 1e-9)
	assert.InDelta(t, 10.0, in.Configuration().EER, 1e-9)
	assert.False(t, in.AutoScale)

	d.RoofType = "straw"
	_, err = cli.InputsFromDefaults(d, true)
	require.ErrorIs(t, err, calculator.ErrUnknownRoofType)
}
