package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyStrainMin          = "strain_min"
	KeyStrainMax          = "strain_max"
	KeyAccept             = "accept"
	KeyExportData         = "export_data"
	KeyExportWorkbook     = "export_workbook"
	KeySummaryPlots       = "summary_plots"
	KeySaveChart          = "save_chart"
	KeyProcessDirectory   = "process_directory"
	KeyReloadFiles        = "reload_files"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyResults            = "results"
	KeyRawDataDirectory   = "raw_data_directory"
	KeyProcessedDirectory = "processed_directory"
	KeyDefaultWindow      = "default_window"
	KeyDragTolerance      = "drag_tolerance"
	KeyMaxParallel        = "max_parallel"
	KeyAutoReveal         = "auto_reveal"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyNoData             = "no_data"
	KeyNoResults          = "no_results"
	KeyNoFit              = "no_fit"
	KeyNoFiles            = "no_files"
	KeyComplete           = "complete"
	KeyAllProcessed       = "all_processed"
	KeyInvalidNumber      = "invalid_number"
	KeyExported           = "exported"
	KeyExportFailed       = "export_failed"
	KeyProcessing         = "processing"
	KeyProcessingDone     = "processing_done"
	KeyProcessingFailed   = "processing_failed"
	KeySummaryMissing     = "summary_missing"
	KeyView               = "view"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeyPathCopied         = "path_copied"
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
	if text, found := l.texts[l.currentLanguage][key]; found {
		return text
	}
	if text, found := l.texts["en"][key]; found {
		return text
	}
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

// initializeTexts initializes all text translations. Entries with a verb
// take fmt arguments.
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Flexural Modulus Analyzer",
		KeyStrainMin:          "Min Strain (%):",
		KeyStrainMax:          "Max Strain (%):",
		KeyAccept:             "Accept (Enter)",
		KeyExportData:         "Export Data",
		KeyExportWorkbook:     "Export Workbook…",
		KeySummaryPlots:       "Save Summary Plots",
		KeySaveChart:          "Save Chart…",
		KeyProcessDirectory:   "Process Directory",
		KeyReloadFiles:        "Reload Files",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyResults:            "Accepted",
		KeyRawDataDirectory:   "Raw Data Directory",
		KeyProcessedDirectory: "Processed Data Directory",
		KeyDefaultWindow:      "Default Strain Window (%)",
		KeyDragTolerance:      "Drag Tolerance (strain %)",
		KeyMaxParallel:        "Max Parallel Files",
		KeyAutoReveal:         "Reveal exported files",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyNoData:             "No Data",
		KeyNoResults:          "No results to export",
		KeyNoFit:              "No valid fit in the selected strain window",
		KeyNoFiles:            "No CSV files found in %s",
		KeyComplete:           "Complete",
		KeyAllProcessed:       "All files processed!",
		KeyInvalidNumber:      "Invalid number: %s",
		KeyExported:           "Exported %s",
		KeyExportFailed:       "Export failed: %s",
		KeyProcessing:         "Processing %s…",
		KeyProcessingDone:     "Processed %d of %d files",
		KeyProcessingFailed:   "Processing failed: %s",
		KeySummaryMissing:     "No summary found, process the directory first",
		KeyView:               "view",
		KeyReveal:             "open",
		KeyCopyPath:           "path",
		KeyPathCopied:         "Path copied",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Анализатор модуля упругости",
		KeyStrainMin:          "Мин. деформация (%):",
		KeyStrainMax:          "Макс. деформация (%):",
		KeyAccept:             "Принять (Enter)",
		KeyExportData:         "Экспорт данных",
		KeyExportWorkbook:     "Экспорт в Excel…",
		KeySummaryPlots:       "Сохранить сводные графики",
		KeySaveChart:          "Сохранить график…",
		KeyProcessDirectory:   "Обработать папку",
		KeyReloadFiles:        "Обновить список",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyResults:            "Принято",
		KeyRawDataDirectory:   "Папка исходных данных",
		KeyProcessedDirectory: "Папка результатов",
		KeyDefaultWindow:      "Окно деформации по умолчанию (%)",
		KeyDragTolerance:      "Допуск захвата (% деформации)",
		KeyMaxParallel:        "Макс. параллельных файлов",
		KeyAutoReveal:         "Показывать экспортированные файлы",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyNoData:             "Нет данных",
		KeyNoResults:          "Нет результатов для экспорта",
		KeyNoFit:              "В выбранном окне нет корректной аппроксимации",
		KeyNoFiles:            "CSV-файлы не найдены в %s",
		KeyComplete:           "Готово",
		KeyAllProcessed:       "Все файлы обработаны!",
		KeyInvalidNumber:      "Неверное число: %s",
		KeyExported:           "Экспортировано: %s",
		KeyExportFailed:       "Ошибка экспорта: %s",
		KeyProcessing:         "Обработка %s…",
		KeyProcessingDone:     "Обработано %d из %d файлов",
		KeyProcessingFailed:   "Ошибка обработки: %s",
		KeySummaryMissing:     "Сводка не найдена, сначала обработайте папку",
		KeyView:               "показать",
		KeyReveal:             "открыть",
		KeyCopyPath:           "путь",
		KeyPathCopied:         "Путь скопирован",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Analisador de Módulo de Flexão",
		KeyStrainMin:          "Deformação mín. (%):",
		KeyStrainMax:          "Deformação máx. (%):",
		KeyAccept:             "Aceitar (Enter)",
		KeyExportData:         "Exportar Dados",
		KeyExportWorkbook:     "Exportar Planilha…",
		KeySummaryPlots:       "Salvar Gráficos de Resumo",
		KeySaveChart:          "Salvar Gráfico…",
		KeyProcessDirectory:   "Processar Diretório",
		KeyReloadFiles:        "Recarregar Arquivos",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyResults:            "Aceitos",
		KeyRawDataDirectory:   "Diretório de Dados Brutos",
		KeyProcessedDirectory: "Diretório de Dados Processados",
		KeyDefaultWindow:      "Janela de Deformação Padrão (%)",
		KeyDragTolerance:      "Tolerância de Arraste (% deformação)",
		KeyMaxParallel:        "Máx. Arquivos Paralelos",
		KeyAutoReveal:         "Mostrar arquivos exportados",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyNoData:             "Sem Dados",
		KeyNoResults:          "Nenhum resultado para exportar",
		KeyNoFit:              "Nenhum ajuste válido na janela selecionada",
		KeyNoFiles:            "Nenhum arquivo CSV encontrado em %s",
		KeyComplete:           "Concluído",
		KeyAllProcessed:       "Todos os arquivos processados!",
		KeyInvalidNumber:      "Número inválido: %s",
		KeyExported:           "Exportado %s",
		KeyExportFailed:       "Falha na exportação: %s",
		KeyProcessing:         "Processando %s…",
		KeyProcessingDone:     "Processados %d de %d arquivos",
		KeyProcessingFailed:   "Falha no processamento: %s",
		KeySummaryMissing:     "Resumo não encontrado, processe o diretório primeiro",
		KeyView:               "ver",
		KeyReveal:             "abrir",
		KeyCopyPath:           "caminho",
		KeyPathCopied:         "Caminho copiado",
	}
}
