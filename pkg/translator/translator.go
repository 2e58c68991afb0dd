package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the bundled translations when set.
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every <lang>.toml file into a fresh bundle. Files for
// languages outside SupportedLanguages are skipped.
func InitTranslator(cfg Config) error {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var source fs.FS
	dir := "translation"
	if cfg.TranslationFolder != "" {
		source = os.DirFS(cfg.TranslationFolder)
		dir = "."
	} else {
		source = embedded
	}

	entries, err := fs.ReadDir(source, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return fmt.Errorf("list translations: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		if !isSupported(strings.TrimSuffix(entry.Name(), ".toml"), cfg.SupportedLanguages) {
			continue
		}

		if _, err := Translator.LoadMessageFileFS(source, path.Join(dir, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
	return nil
}

func isSupported(lang string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	for _, s := range supported {
		if s == lang {
			return true
		}
	}
	return false
}
