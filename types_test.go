package declinecodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedLocales(t *testing.T) {
	assert.Equal(t, []Locale{LocaleEN, LocaleJA}, SupportedLocales())

	mutated := SupportedLocales()
	mutated[0] = "xx"
	assert.Equal(t, []Locale{LocaleEN, LocaleJA}, SupportedLocales())
}

func TestDeclineRecord_Clone(t *testing.T) {
	t.Run("translations map is independent", func(t *testing.T) {
		rec := validTestRecord("expired_card")

		cp := rec.clone()
		cp.Translations[LocaleJA] = Translation{NextUserAction: "tampered"}
		cp.Translations["xx"] = Translation{NextUserAction: "tampered"}

		assert.Equal(t, "もう一度お試しください。", rec.Translations[LocaleJA].NextUserAction)
		assert.NotContains(t, rec.Translations, Locale("xx"))
	})

	t.Run("nil translations stay nil", func(t *testing.T) {
		rec := validTestRecord("expired_card")
		rec.Translations = nil

		assert.Nil(t, rec.clone().Translations)
	})
}
