package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterReadingsDropsShortReadings(t *testing.T) {
	in := []Entry{
		{Word: "木", Readings: []Reading{{"き", 100}}, Proficiency: ProficiencyUngraded},
		{Word: "日", Readings: []Reading{{"ひ", 100}, {"にち", 100}}, Proficiency: ProficiencyUngraded},
		{Word: "猫", Readings: []Reading{{"ねこ", 100}}, Proficiency: ProficiencyUngraded},
	}
	out := FilterReadings(in, DefaultRankScale())
	require.Len(t, out, 2)
	assert.Equal(t, "日", out[0].Word)
	assert.Equal(t, []Reading{{"にち", 100}}, out[0].Readings)
	assert.Equal(t, "猫", out[1].Word)

	for _, e := range out {
		for _, r := range e.Readings {
			assert.GreaterOrEqual(t, len([]rune(r.Text)), MinReadingLen)
		}
	}
}

func TestFilterReadingsDropsObscureAlternates(t *testing.T) {
	in := []Entry{{
		Word:        "上手",
		Readings:    []Reading{{"じょうず", 300}, {"うわて", 12000}, {"かみて", 450}},
		Proficiency: N4,
	}}
	out := FilterReadings(in, DefaultRankScale())
	require.Len(t, out, 1)
	assert.Equal(t, []Reading{{"じょうず", 300}, {"かみて", 450}}, out[0].Readings)
}

func TestFilterReadingsKeepsSingleObscureReading(t *testing.T) {
	in := []Entry{{Word: "曖昧", Readings: []Reading{{"あいまい", 9000}}, Proficiency: N5}}
	out := FilterReadings(in, DefaultRankScale())
	require.Len(t, out, 1)
	assert.Equal(t, []Reading{{"あいまい", 9000}}, out[0].Readings)
}

func TestFilterReadingsNeverEmptiesOnObscurity(t *testing.T) {
	in := []Entry{{
		Word:        "生",
		Readings:    []Reading{{"なま", 9000}, {"せい", 9500}},
		Proficiency: N3,
	}}
	out := FilterReadings(in, DefaultRankScale())
	require.Len(t, out, 1)
	assert.Equal(t, []Reading{{"なま", 9000}}, out[0].Readings)
}

func TestFilterReadingsUngradedKeepsAll(t *testing.T) {
	in := []Entry{{
		Word:        "上手",
		Readings:    []Reading{{"じょうず", 300}, {"うわて", 12000}},
		Proficiency: ProficiencyUngraded,
	}}
	out := FilterReadings(in, DefaultRankScale())
	assert.Len(t, out[0].Readings, 2)
}
