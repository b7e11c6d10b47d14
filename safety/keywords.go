// golos-labs/golos-bot/safety/keywords.go
package safety

// defaultKeywords is the built-in crisis vocabulary, lower-case. Matching
// is substring-based, so multi-word phrases match anywhere in the text.
var defaultKeywords = []string{
	// Russian
	"хочу умереть",
	"не хочу жить",
	"покончить с собой",
	"покончу с собой",
	"убить себя",
	"убью себя",
	"самоубийство",
	"суицид",
	"свести счёты с жизнью",
	"свести счеты с жизнью",
	// English
	"want to die",
	"kill myself",
	"end my life",
	"suicide",
	"self-harm",
	"hurt myself",
}

// CrisisReply is the fixed crisis-resources message. It is authored here,
// never produced or edited by the model.
const CrisisReply = "Мне очень жаль, что вам сейчас так тяжело. Я всего лишь программа и не могу заменить живую поддержку.\n\n" +
	"Пожалуйста, поговорите с кем-то прямо сейчас:\n" +
	"• Телефон доверия (Россия, круглосуточно, бесплатно): 8-800-2000-122\n" +
	"• Экстренная психологическая помощь МЧС: +7 (495) 989-50-50\n" +
	"• Если вы в другой стране, наберите местный номер экстренных служб.\n\n" +
	"Вы не одни, и помощь существует."
