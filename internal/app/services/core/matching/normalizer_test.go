package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Spacing And Casing Variants Fold To Same Slug", func(t *testing.T) {
		variants := []string{
			"Somatic Experiencing",
			"somatic_experiencing",
			"Somatic-Experiencing",
			"  somatic   experiencing  ",
		}
		for _, variant := range variants {
			assert.Equal(t, "somatic-experiencing", Normalize(variant), "variant %q", variant)
		}
	})

	t.Run("Parenthetical Annotations Are Dropped", func(t *testing.T) {
		assert.Equal(t, "narm", Normalize("NARM (Entwicklungstrauma)"))
		assert.Equal(t, "ifs", Normalize("IFS (Internal Family Systems)"))
	})

	t.Run("German Diacritics And Eszett", func(t *testing.T) {
		assert.Equal(t, "korperorientiert", Normalize("körperorientiert"))
		assert.Equal(t, "essstorungen", Normalize("Eßstörungen"))
		assert.Equal(t, "munchen", Normalize("München"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{"Somatic Experiencing", "NARM (Entwicklungstrauma)", "Traumatherapie"}
		for _, input := range inputs {
			once := Normalize(input)
			assert.Equal(t, once, Normalize(once))
		}
	})

	t.Run("Degenerate Inputs Fold To Empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
		assert.Equal(t, "", Normalize("(nur Klammern)"))
		assert.Equal(t, "", Normalize("---"))
	})

	t.Run("Hyphen Runs Collapse", func(t *testing.T) {
		assert.Equal(t, "a-b", Normalize("a -- b"))
		assert.Equal(t, "emdr-traumatherapie", Normalize("EMDR / Traumatherapie"))
	})
}

func TestNormalizeSet(t *testing.T) {
	t.Run("Drops Empty Slugs And Deduplicates", func(t *testing.T) {
		set := NormalizeSet([]string{"NARM", "narm", "  ", "(x)", "Somatic Experiencing"})
		assert.Len(t, set, 2)
		assert.Contains(t, set, "narm")
		assert.Contains(t, set, "somatic-experiencing")
	})

	t.Run("Overlap Counts Distinct Shared Slugs", func(t *testing.T) {
		a := NormalizeSet([]string{"NARM", "IFS", "EMDR"})
		b := NormalizeSet([]string{"narm", "emdr", "Hypnose"})
		assert.Equal(t, 2, overlapCount(a, b))
	})
}
