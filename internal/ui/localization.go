package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyMode              = "mode"
	KeyAddFiles          = "add_files"
	KeyRemoveSelected    = "remove_selected"
	KeyClearAll          = "clear_all"
	KeyConvert           = "convert"
	KeyAcceptedFiles     = "accepted_files"
	KeyDropHint          = "drop_hint"
	KeyFilesCount        = "files_count"
	KeyReady             = "ready"
	KeyWarning           = "warning"
	KeyFilesSkipped      = "files_skipped"
	KeyNoFiles           = "no_files"
	KeyDone              = "done"
	KeyAllConverted      = "all_converted"
	KeyConversionFailed  = "conversion_failed"
	KeyBusy              = "busy"
	KeyOfficeMissing     = "office_missing"
	KeyStatusQueued      = "status_queued"
	KeyStatusConverting  = "status_converting"
	KeyStatusConverted   = "status_converted"
	KeyStatusFailed      = "status_failed"
	KeyConversionSection = "conversion_section"
	KeyInterfaceSection  = "interface_section"
	KeyOutputDirectory   = "output_directory"
	KeyOfficeBinary      = "office_binary"
	KeyAutoDetect        = "auto_detect"
	KeyPacingDelay       = "pacing_delay"
	KeyTimeout           = "timeout"
	KeyRevealOnComplete  = "reveal_on_complete"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
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

// initializeTexts initializes all text translations.
// Entries containing %s or %d are format strings.
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Office Converter",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyMode:              "Conversion",
		KeyAddFiles:          "Add Files",
		KeyRemoveSelected:    "Remove Selected",
		KeyClearAll:          "Clear All",
		KeyConvert:           "Convert",
		KeyAcceptedFiles:     "Accepts .%s files",
		KeyDropHint:          "Drop .%s files here or use Add Files",
		KeyFilesCount:        "%d file(s)",
		KeyReady:             "Ready",
		KeyWarning:           "Warning",
		KeyFilesSkipped:      "Some files were not added:",
		KeyNoFiles:           "Please add files first.",
		KeyDone:              "Done",
		KeyAllConverted:      "All files converted successfully!",
		KeyConversionFailed:  "Conversion failed",
		KeyBusy:              "A conversion is already running.",
		KeyOfficeMissing:     "LibreOffice was not found. Install it or set its path in Settings.",
		KeyStatusQueued:      "Queued",
		KeyStatusConverting:  "Converting",
		KeyStatusConverted:   "Converted",
		KeyStatusFailed:      "Failed",
		KeyConversionSection: "Conversion Settings",
		KeyInterfaceSection:  "Interface Settings",
		KeyOutputDirectory:   "Output Directory",
		KeyOfficeBinary:      "LibreOffice Executable",
		KeyAutoDetect:        "Auto-detect",
		KeyPacingDelay:       "Delay Before Each File (ms)",
		KeyTimeout:           "Timeout Per File (s)",
		KeyRevealOnComplete:  "Open output folder when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер документов",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyMode:              "Преобразование",
		KeyAddFiles:          "Добавить файлы",
		KeyRemoveSelected:    "Удалить выбранный",
		KeyClearAll:          "Очистить",
		KeyConvert:           "Конвертировать",
		KeyAcceptedFiles:     "Принимаются файлы .%s",
		KeyDropHint:          "Перетащите файлы .%s сюда или нажмите «Добавить файлы»",
		KeyFilesCount:        "Файлов: %d",
		KeyReady:             "Готово к работе",
		KeyWarning:           "Предупреждение",
		KeyFilesSkipped:      "Некоторые файлы не добавлены:",
		KeyNoFiles:           "Сначала добавьте файлы.",
		KeyDone:              "Готово",
		KeyAllConverted:      "Все файлы успешно преобразованы!",
		KeyConversionFailed:  "Ошибка преобразования",
		KeyBusy:              "Преобразование уже выполняется.",
		KeyOfficeMissing:     "LibreOffice не найден. Установите его или укажите путь в настройках.",
		KeyStatusQueued:      "В очереди",
		KeyStatusConverting:  "Обработка",
		KeyStatusConverted:   "Готово",
		KeyStatusFailed:      "Ошибка",
		KeyConversionSection: "Параметры преобразования",
		KeyInterfaceSection:  "Параметры интерфейса",
		KeyOutputDirectory:   "Папка результатов",
		KeyOfficeBinary:      "Исполняемый файл LibreOffice",
		KeyAutoDetect:        "Определить автоматически",
		KeyPacingDelay:       "Пауза перед файлом (мс)",
		KeyTimeout:           "Тайм-аут на файл (с)",
		KeyRevealOnComplete:  "Открыть папку по завершении",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Documentos",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyMode:              "Conversão",
		KeyAddFiles:          "Adicionar Arquivos",
		KeyRemoveSelected:    "Remover Selecionado",
		KeyClearAll:          "Limpar Tudo",
		KeyConvert:           "Converter",
		KeyAcceptedFiles:     "Aceita arquivos .%s",
		KeyDropHint:          "Solte arquivos .%s aqui ou use Adicionar Arquivos",
		KeyFilesCount:        "%d arquivo(s)",
		KeyReady:             "Pronto",
		KeyWarning:           "Aviso",
		KeyFilesSkipped:      "Alguns arquivos não foram adicionados:",
		KeyNoFiles:           "Adicione arquivos primeiro.",
		KeyDone:              "Concluído",
		KeyAllConverted:      "Todos os arquivos foram convertidos!",
		KeyConversionFailed:  "Falha na conversão",
		KeyBusy:              "Uma conversão já está em andamento.",
		KeyOfficeMissing:     "LibreOffice não encontrado. Instale-o ou defina o caminho nas Configurações.",
		KeyStatusQueued:      "Na fila",
		KeyStatusConverting:  "Convertendo",
		KeyStatusConverted:   "Convertido",
		KeyStatusFailed:      "Falhou",
		KeyConversionSection: "Configurações de Conversão",
		KeyInterfaceSection:  "Configurações de Interface",
		KeyOutputDirectory:   "Diretório de Saída",
		KeyOfficeBinary:      "Executável do LibreOffice",
		KeyAutoDetect:        "Detectar automaticamente",
		KeyPacingDelay:       "Pausa Antes de Cada Arquivo (ms)",
		KeyTimeout:           "Tempo Limite por Arquivo (s)",
		KeyRevealOnComplete:  "Abrir pasta de saída ao terminar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
