package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "species.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFromFilesHeaderAliases(t *testing.T) {
	// underscored aliases and a BOM on the first header
	p := writeCSV(t, "\uFEFFname,water_days,fertilize_days,repot_days,amount_ml,note\n"+
		"Monstera deliciosa,7,30,540,500,likes to dry out\n")

	eng, err := LoadFromFiles(p)
	require.NoError(t, err)
	assert.True(t, eng.Known("monstera deliciosa"))
	assert.True(t, eng.Known("  Monstera Deliciosa  "), "lookup is case and space insensitive")
	assert.False(t, eng.Known("ficus"))
}

func TestLoadFromFilesSkipsInvalidRows(t *testing.T) {
	p := writeCSV(t, "Species,WaterIntervalDays\nGood,5\nBad,0\nWorse,notanumber\n")

	eng, err := LoadFromFiles(p)
	require.NoError(t, err)
	assert.True(t, eng.Known("good"))
	assert.False(t, eng.Known("bad"))
	assert.False(t, eng.Known("worse"))
}

func TestLoadFromFilesMissingColumns(t *testing.T) {
	p := writeCSV(t, "Species,Color\nRose,red\n")
	_, err := LoadFromFiles(p)
	require.Error(t, err)
}

func TestDefaultRulesSoilAdjustment(t *testing.T) {
	p := writeCSV(t, "Species,WaterIntervalDays,FertilizeIntervalDays,WaterAmountML\nCactus Mix,10,60,200\n")
	eng, err := LoadFromFiles(p)
	require.NoError(t, err)

	rules := eng.DefaultRules(&entities.Plant{Species: "Cactus Mix", SoilType: "cactus"})
	require.NotEmpty(t, rules)
	assert.Equal(t, entities.CareWater, rules[0].Type)
	assert.Equal(t, 15, rules[0].IntervalDays, "cactus soil stretches the interval by 1.5")

	// unknown soil type falls back to factor 1.0
	rules = eng.DefaultRules(&entities.Plant{Species: "Cactus Mix", SoilType: "peat"})
	assert.Equal(t, 10, rules[0].IntervalDays)
}

func TestDefaultRulesPotScaling(t *testing.T) {
	p := writeCSV(t, "Species,WaterIntervalDays,WaterAmountML\nFicus,7,300\n")
	eng, err := LoadFromFiles(p)
	require.NoError(t, err)

	pot := 24.0
	rules := eng.DefaultRules(&entities.Plant{Species: "Ficus", PotSizeCM: &pot})
	require.NotEmpty(t, rules)
	require.NotNil(t, rules[0].AmountML)
	assert.InDelta(t, 600.0, *rules[0].AmountML, 0.01, "table assumes a 12 cm pot")
}

func TestDefaultRulesUnknownSpecies(t *testing.T) {
	p := writeCSV(t, "Species,WaterIntervalDays\nFicus,7\n")
	eng, err := LoadFromFiles(p)
	require.NoError(t, err)

	rules := eng.DefaultRules(&entities.Plant{Species: "Triffid"})
	require.Len(t, rules, 1)
	assert.Equal(t, entities.DefaultIntervalDays, rules[0].IntervalDays)
}
