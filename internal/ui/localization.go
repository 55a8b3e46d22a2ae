package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFetchFormats      = "fetch_formats"
	KeyDownload          = "download"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeyDestination       = "destination"
	KeyAvailableFormats  = "available_formats"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyReady             = "ready"
	KeyFetchingFormats   = "fetching_formats"
	KeyFormatsFound      = "formats_found"
	KeyNoFormats         = "no_formats"
	KeyDownloading       = "downloading"
	KeyDownloadCompleted = "download_completed"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidURL        = "invalid_url"
	KeySelectFormat      = "select_format"
	KeyChooseDestination = "choose_destination"
	KeyFileExists        = "file_exists"
	KeyJobInFlight       = "job_in_flight"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyDownloadDirectory = "download_directory"
	KeyOverwriteExisting = "overwrite_existing"
	KeyRetryAttempts     = "retry_attempts"
	KeyAutoReveal        = "auto_reveal"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Picker",
		KeyFetchFormats:      "Fetch Formats",
		KeyDownload:          "Download",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter video URL (https://...)",
		KeyDestination:       "Destination folder",
		KeyAvailableFormats:  "Available Formats",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyReady:             "Ready",
		KeyFetchingFormats:   "Fetching available formats...",
		KeyFormatsFound:      "Found %d formats for: %s",
		KeyNoFormats:         "No combined video+audio formats found",
		KeyDownloading:       "Downloading",
		KeyDownloadCompleted: "Download completed",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyInvalidURL:        "Invalid URL",
		KeySelectFormat:      "Please select a format to download",
		KeyChooseDestination: "Please choose a destination folder",
		KeyFileExists:        "File already exists; enable overwrite in settings",
		KeyJobInFlight:       "Another operation is in progress",
		KeyErrorOpeningFile:  "Error opening file",
		KeyDownloadDirectory: "Download Directory",
		KeyOverwriteExisting: "Overwrite existing files",
		KeyRetryAttempts:     "Retry attempts (0-10)",
		KeyAutoReveal:        "Reveal file when completed",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Picker",
		KeyFetchFormats:      "Получить форматы",
		KeyDownload:          "Скачать",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL видео (https://...)",
		KeyDestination:       "Папка назначения",
		KeyAvailableFormats:  "Доступные форматы",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyReady:             "Готово",
		KeyFetchingFormats:   "Получение списка форматов...",
		KeyFormatsFound:      "Найдено форматов: %d для: %s",
		KeyNoFormats:         "Совмещённые видео+аудио форматы не найдены",
		KeyDownloading:       "Загрузка",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyInvalidURL:        "Неверный URL",
		KeySelectFormat:      "Выберите формат для загрузки",
		KeyChooseDestination: "Выберите папку назначения",
		KeyFileExists:        "Файл уже существует; включите перезапись в настройках",
		KeyJobInFlight:       "Другая операция уже выполняется",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyDownloadDirectory: "Папка загрузки",
		KeyOverwriteExisting: "Перезаписывать существующие файлы",
		KeyRetryAttempts:     "Повторные попытки (0-10)",
		KeyAutoReveal:        "Показать файл после завершения",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Picker",
		KeyFetchFormats:      "Buscar Formatos",
		KeyDownload:          "Baixar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite a URL do vídeo (https://...)",
		KeyDestination:       "Pasta de destino",
		KeyAvailableFormats:  "Formatos Disponíveis",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyReady:             "Pronto",
		KeyFetchingFormats:   "Buscando formatos disponíveis...",
		KeyFormatsFound:      "Encontrados %d formatos para: %s",
		KeyNoFormats:         "Nenhum formato combinado de vídeo+áudio encontrado",
		KeyDownloading:       "Baixando",
		KeyDownloadCompleted: "Download concluído",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
		KeyInvalidURL:        "URL inválida",
		KeySelectFormat:      "Selecione um formato para baixar",
		KeyChooseDestination: "Escolha uma pasta de destino",
		KeyFileExists:        "O arquivo já existe; ative a sobrescrita nas configurações",
		KeyJobInFlight:       "Outra operação está em andamento",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyDownloadDirectory: "Diretório de Download",
		KeyOverwriteExisting: "Sobrescrever arquivos existentes",
		KeyRetryAttempts:     "Tentativas (0-10)",
		KeyAutoReveal:        "Revelar arquivo ao concluir",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
