package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-yafai/project-managment/pkg/translator"
)

func TestInitTranslator_LoadsMessagesFromFolder(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
hello = "Hello english"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), content, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	require.NoError(t, translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	}))

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageEn).Localize(&i18n.LocalizeConfig{
		MessageID: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello english", msg)
}

func TestInitTranslator_EmbeddedBundles(t *testing.T) {
	require.NoError(t, translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	}))

	en, err := i18n.NewLocalizer(translator.Translator, translator.LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: "commentNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Comment not found", en)

	fr, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).Localize(&i18n.LocalizeConfig{MessageID: "commentNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Commentaire introuvable", fr)
}

func TestInitTranslator_SkipsUnsupportedLanguages(t *testing.T) {
	require.NoError(t, translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn},
	}))

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr, translator.LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: "commentNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Comment not found", msg)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	err := translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.Error(t, err)
}
