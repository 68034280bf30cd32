// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Olá! Eu ajudo você a memorizar qualquer coisa com repetição espaçada.\n\n" +
		"Crie cartões com /add frente | verso e revise com /review. " +
		"Depois de ver a resposta, diga como foi: Errei, Difícil, Médio ou Fácil. " +
		"Quanto melhor você lembrar, mais tarde o cartão volta."
	msgHelp = "Comandos:\n\n" +
		"/review — revisar os cartões pendentes\n" +
		"/add frente | verso — criar um cartão\n" +
		"/stats — progresso e conquistas\n" +
		"/remind — ver lembretes\n" +
		"/remind on | off — ligar ou desligar lembretes\n" +
		"/remind 20 — lembrar às 20h\n" +
		"/remind tz UTC-3 — definir fuso horário"
	msgUseCommands    = "Use /review para revisar ou /add frente | verso para criar um cartão."
	msgUnknownCommand = "Comando desconhecido. Veja /help."
	msgInternalError  = "Algo deu errado. Tente novamente mais tarde."
	msgNoCardsDue     = "🎉 Nenhum cartão para revisar agora."
	msgAddUsage       = "Use: /add frente | verso"
	msgAddTooLong     = "O cartão é grande demais. Frente até 2000 e verso até 4000 caracteres."
	msgCardNotFound   = "Este cartão não existe mais."
	msgRemindUsage    = "Use: /remind on, /remind off, /remind <hora de 0 a 23> ou /remind tz <fuso>"
	msgBadTimezone    = "Fuso horário inválido. Exemplos: America/Sao_Paulo, UTC-3, +05:30."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}
