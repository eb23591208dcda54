package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle  = "app_title"
	KeySettings  = "settings"
	KeyLanguage  = "language"
	KeySave      = "save"
	KeyCancel    = "cancel"
	KeyBrowse    = "browse"
	KeyAdd       = "add"
	KeyDelete    = "delete"
	KeyClearAll  = "clear_all"
	KeyClearAsk  = "clear_ask"
	KeyCopy      = "copy"
	KeyCopied    = "copied"
	KeyOpen      = "open"
	KeyFile      = "file"
	KeyDuplicate = "duplicate"
	KeyActionErr = "action_failed"

	KeyTabClips  = "tab_clips"
	KeyTabLinks  = "tab_links"
	KeyTabTasks  = "tab_tasks"
	KeyTabTimer  = "tab_timer"
	KeyTabCheck  = "tab_check"
	KeyTabImages = "tab_images"

	KeyClipPlaceholder = "clip_placeholder"
	KeyLinkName        = "link_name"
	KeyLinkURL         = "link_url"
	KeyTaskPlaceholder = "task_placeholder"
	KeyInvalidURL      = "invalid_url"
	KeyOpenLinkError   = "open_link_error"

	KeyTimerMinutes = "timer_minutes"
	KeyTimerStart   = "timer_start"
	KeyTimerPause   = "timer_pause"
	KeyTimerResume  = "timer_resume"
	KeyTimerReset   = "timer_reset"
	KeyTimerDone    = "timer_done"
	KeyTimerInvalid = "timer_invalid"

	KeyCheckText       = "check_text"
	KeyCheckButton     = "check_button"
	KeyCheckInProgress = "check_in_progress"
	KeyCheckFailed     = "check_failed"
	KeyCheckEmpty      = "check_empty"

	KeyImagePrompt     = "image_prompt"
	KeyImageGenerate   = "image_generate"
	KeyImageInProgress = "image_in_progress"
	KeyImageFailed     = "image_failed"
	KeyImageSave       = "image_save"
	KeyImageSaved      = "image_saved"
	KeyImageReveal     = "image_reveal"

	KeyChatTitle        = "chat_title"
	KeyChatPlaceholder  = "chat_placeholder"
	KeyChatSend         = "chat_send"
	KeyChatClear        = "chat_clear"
	KeyChatFailed       = "chat_failed"
	KeyChatMissingKey   = "chat_missing_key"
	KeySettingsSaved    = "settings_saved"
	KeyGrammarSection   = "grammar_section"
	KeyGeminiSection    = "gemini_section"
	KeyClipboardSection = "clipboard_section"
	KeyWatchClipboard   = "watch_clipboard"
	KeyPollInterval     = "poll_interval"
	KeyImagesDirectory  = "images_directory"
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
		KeyAppTitle:  "DeskPin",
		KeySettings:  "Settings",
		KeyLanguage:  "Language",
		KeySave:      "Save",
		KeyCancel:    "Cancel",
		KeyBrowse:    "Browse",
		KeyAdd:       "Add",
		KeyDelete:    "Delete",
		KeyClearAll:  "Clear all",
		KeyClearAsk:  "Remove all entries from this list?",
		KeyCopy:      "Copy",
		KeyCopied:    "Copied to clipboard",
		KeyOpen:      "Open",
		KeyFile:      "File",
		KeyDuplicate: "Already exists",
		KeyActionErr: "Action failed",

		KeyTabClips:  "Clips",
		KeyTabLinks:  "Links",
		KeyTabTasks:  "Tasks",
		KeyTabTimer:  "Timer",
		KeyTabCheck:  "Grammar",
		KeyTabImages: "Images",

		KeyClipPlaceholder: "Paste or type a snippet...",
		KeyLinkName:        "Name (optional)",
		KeyLinkURL:         "https://...",
		KeyTaskPlaceholder: "New task...",
		KeyInvalidURL:      "Invalid URL",
		KeyOpenLinkError:   "Error opening link",

		KeyTimerMinutes: "Minutes",
		KeyTimerStart:   "Start",
		KeyTimerPause:   "Pause",
		KeyTimerResume:  "Resume",
		KeyTimerReset:   "Reset",
		KeyTimerDone:    "Time is up",
		KeyTimerInvalid: "Enter a positive number of minutes",

		KeyCheckText:       "Text to check...",
		KeyCheckButton:     "Check",
		KeyCheckInProgress: "Checking...",
		KeyCheckFailed:     "Grammar check failed",
		KeyCheckEmpty:      "Please enter text to check",

		KeyImagePrompt:     "Describe an image...",
		KeyImageGenerate:   "Generate",
		KeyImageInProgress: "Generating...",
		KeyImageFailed:     "Image generation failed",
		KeyImageSave:       "Save",
		KeyImageSaved:      "Image saved",
		KeyImageReveal:     "Reveal",

		KeyChatTitle:        "Assistant",
		KeyChatPlaceholder:  "Ask anything...",
		KeyChatSend:         "Send",
		KeyChatClear:        "Clear history",
		KeyChatFailed:       "Chat request failed",
		KeyChatMissingKey:   "Set the Gemini API key in Settings first",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyGrammarSection:   "Grammar Checking",
		KeyGeminiSection:    "Gemini (Chat & Images)",
		KeyClipboardSection: "Clipboard",
		KeyWatchClipboard:   "Capture clipboard automatically",
		KeyPollInterval:     "Poll interval (ms)",
		KeyImagesDirectory:  "Images Directory",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:  "DeskPin",
		KeySettings:  "Настройки",
		KeyLanguage:  "Язык",
		KeySave:      "Сохранить",
		KeyCancel:    "Отмена",
		KeyBrowse:    "Обзор",
		KeyAdd:       "Добавить",
		KeyDelete:    "Удалить",
		KeyClearAll:  "Очистить все",
		KeyClearAsk:  "Удалить все записи из этого списка?",
		KeyCopy:      "Копировать",
		KeyCopied:    "Скопировано в буфер",
		KeyOpen:      "Открыть",
		KeyFile:      "Файл",
		KeyDuplicate: "Уже существует",
		KeyActionErr: "Действие не выполнено",

		KeyTabClips:  "Буфер",
		KeyTabLinks:  "Ссылки",
		KeyTabTasks:  "Задачи",
		KeyTabTimer:  "Таймер",
		KeyTabCheck:  "Грамматика",
		KeyTabImages: "Картинки",

		KeyClipPlaceholder: "Вставьте или введите текст...",
		KeyLinkName:        "Название (необязательно)",
		KeyLinkURL:         "https://...",
		KeyTaskPlaceholder: "Новая задача...",
		KeyInvalidURL:      "Неверный URL",
		KeyOpenLinkError:   "Ошибка открытия ссылки",

		KeyTimerMinutes: "Минуты",
		KeyTimerStart:   "Старт",
		KeyTimerPause:   "Пауза",
		KeyTimerResume:  "Продолжить",
		KeyTimerReset:   "Сброс",
		KeyTimerDone:    "Время вышло",
		KeyTimerInvalid: "Введите положительное число минут",

		KeyCheckText:       "Текст для проверки...",
		KeyCheckButton:     "Проверить",
		KeyCheckInProgress: "Проверка...",
		KeyCheckFailed:     "Проверка грамматики не удалась",
		KeyCheckEmpty:      "Введите текст для проверки",

		KeyImagePrompt:     "Опишите изображение...",
		KeyImageGenerate:   "Создать",
		KeyImageInProgress: "Генерация...",
		KeyImageFailed:     "Генерация изображения не удалась",
		KeyImageSave:       "Сохранить",
		KeyImageSaved:      "Изображение сохранено",
		KeyImageReveal:     "Показать",

		KeyChatTitle:        "Ассистент",
		KeyChatPlaceholder:  "Спросите что угодно...",
		KeyChatSend:         "Отправить",
		KeyChatClear:        "Очистить историю",
		KeyChatFailed:       "Запрос не удался",
		KeyChatMissingKey:   "Сначала укажите ключ Gemini API в настройках",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyGrammarSection:   "Проверка грамматики",
		KeyGeminiSection:    "Gemini (чат и картинки)",
		KeyClipboardSection: "Буфер обмена",
		KeyWatchClipboard:   "Захватывать буфер автоматически",
		KeyPollInterval:     "Интервал опроса (мс)",
		KeyImagesDirectory:  "Папка изображений",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:  "DeskPin",
		KeySettings:  "Configurações",
		KeyLanguage:  "Idioma",
		KeySave:      "Salvar",
		KeyCancel:    "Cancelar",
		KeyBrowse:    "Navegar",
		KeyAdd:       "Adicionar",
		KeyDelete:    "Excluir",
		KeyClearAll:  "Limpar tudo",
		KeyClearAsk:  "Remover todas as entradas desta lista?",
		KeyCopy:      "Copiar",
		KeyCopied:    "Copiado para a área de transferência",
		KeyOpen:      "Abrir",
		KeyFile:      "Arquivo",
		KeyDuplicate: "Já existe",
		KeyActionErr: "Ação falhou",

		KeyTabClips:  "Clips",
		KeyTabLinks:  "Links",
		KeyTabTasks:  "Tarefas",
		KeyTabTimer:  "Timer",
		KeyTabCheck:  "Gramática",
		KeyTabImages: "Imagens",

		KeyClipPlaceholder: "Cole ou digite um trecho...",
		KeyLinkName:        "Nome (opcional)",
		KeyLinkURL:         "https://...",
		KeyTaskPlaceholder: "Nova tarefa...",
		KeyInvalidURL:      "URL inválida",
		KeyOpenLinkError:   "Erro ao abrir link",

		KeyTimerMinutes: "Minutos",
		KeyTimerStart:   "Iniciar",
		KeyTimerPause:   "Pausar",
		KeyTimerResume:  "Continuar",
		KeyTimerReset:   "Reiniciar",
		KeyTimerDone:    "O tempo acabou",
		KeyTimerInvalid: "Digite um número positivo de minutos",

		KeyCheckText:       "Texto para verificar...",
		KeyCheckButton:     "Verificar",
		KeyCheckInProgress: "Verificando...",
		KeyCheckFailed:     "Verificação gramatical falhou",
		KeyCheckEmpty:      "Digite um texto para verificar",

		KeyImagePrompt:     "Descreva uma imagem...",
		KeyImageGenerate:   "Gerar",
		KeyImageInProgress: "Gerando...",
		KeyImageFailed:     "Geração de imagem falhou",
		KeyImageSave:       "Salvar",
		KeyImageSaved:      "Imagem salva",
		KeyImageReveal:     "Revelar",

		KeyChatTitle:        "Assistente",
		KeyChatPlaceholder:  "Pergunte qualquer coisa...",
		KeyChatSend:         "Enviar",
		KeyChatClear:        "Limpar histórico",
		KeyChatFailed:       "Solicitação de chat falhou",
		KeyChatMissingKey:   "Defina a chave da API Gemini nas Configurações primeiro",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyGrammarSection:   "Verificação Gramatical",
		KeyGeminiSection:    "Gemini (Chat e Imagens)",
		KeyClipboardSection: "Área de Transferência",
		KeyWatchClipboard:   "Capturar área de transferência automaticamente",
		KeyPollInterval:     "Intervalo de consulta (ms)",
		KeyImagesDirectory:  "Diretório de Imagens",
	}
}
