package ui

import "github.com/ytget/itunes-gallery/internal/gallery"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeyGetImages         = "get_images"
	KeyPlay              = "play"
	KeyPause             = "pause"
	KeyInstructions      = "instructions"
	KeySearching         = "searching"
	KeySearchFailed      = "search_failed"
	KeyCredit            = "credit"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyError             = "error"
	KeyOK                = "ok"
	KeyDefaultTerm       = "default_term"
	KeyDefaultCategory   = "default_category"
	KeySlideshowInterval = "slideshow_interval"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// ControllerTexts returns the strings the gallery controller writes
func (l *Localization) ControllerTexts() gallery.Texts {
	return gallery.Texts{
		Instructions: l.GetText(KeyInstructions),
		Searching:    l.GetText(KeySearching),
		Failed:       l.GetText(KeySearchFailed),
		Play:         l.GetText(KeyPlay),
		Pause:        l.GetText(KeyPause),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "GalleryApp!",
		KeySearch:            "Search:",
		KeyGetImages:         "Get Images",
		KeyPlay:              "Play",
		KeyPause:             "Pause",
		KeyInstructions:      "Type in a term, select a media type, then click the button.",
		KeySearching:         "Getting images...",
		KeySearchFailed:      "Last attempt to get images failed...",
		KeyCredit:            "Images provided by iTunes API.",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyError:             "Error",
		KeyOK:                "OK",
		KeyDefaultTerm:       "Default Search Term",
		KeyDefaultCategory:   "Default Media Type",
		KeySlideshowInterval: "Slideshow Interval (seconds)",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Галерея!",
		KeySearch:            "Поиск:",
		KeyGetImages:         "Найти",
		KeyPlay:              "Старт",
		KeyPause:             "Пауза",
		KeyInstructions:      "Введите запрос, выберите тип медиа и нажмите кнопку.",
		KeySearching:         "Загрузка изображений...",
		KeySearchFailed:      "Последняя попытка получить изображения не удалась...",
		KeyCredit:            "Изображения предоставлены iTunes API.",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyError:             "Ошибка",
		KeyOK:                "OK",
		KeyDefaultTerm:       "Запрос по умолчанию",
		KeyDefaultCategory:   "Тип медиа по умолчанию",
		KeySlideshowInterval: "Интервал слайд-шоу (сек.)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "GalleryApp!",
		KeySearch:            "Buscar:",
		KeyGetImages:         "Obter Imagens",
		KeyPlay:              "Tocar",
		KeyPause:             "Pausar",
		KeyInstructions:      "Digite um termo, selecione um tipo de mídia e clique no botão.",
		KeySearching:         "Obtendo imagens...",
		KeySearchFailed:      "A última tentativa de obter imagens falhou...",
		KeyCredit:            "Imagens fornecidas pela API do iTunes.",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyError:             "Erro",
		KeyOK:                "OK",
		KeyDefaultTerm:       "Termo de Busca Padrão",
		KeyDefaultCategory:   "Tipo de Mídia Padrão",
		KeySlideshowInterval: "Intervalo do Slideshow (segundos)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
