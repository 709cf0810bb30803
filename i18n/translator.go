package i18n

import "strings"

// Translator retrieves localized messages for validation error codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "received" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "期待した型は " + data["expected"] + " ですが " + data["received"] + " を受け取りました"
		case "invalid_enum":
			return "許可された値のいずれでもありません"
		case "unknown_key":
			return "未知のプロパティ " + quote(data["key"]) + " です"
		case "union_mismatch":
			return "許可されたスキーマのいずれにも一致しません"
		case "invalid_schema":
			return "認識できないスキーマ形式です"
		case "max_depth":
			return "検証の最大深度を超えました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "Expected type " + data["expected"] + " but received " + data["received"]
		case "invalid_enum":
			return "Value is not one of the allowed values"
		case "unknown_key":
			return "Unexpected property " + quote(data["key"])
		case "union_mismatch":
			return "Value does not match any of the allowed schemas"
		case "invalid_schema":
			return "Unrecognized schema shape"
		case "max_depth":
			return "Maximum validation depth exceeded"
		}
	}
	return code
}

func quote(s string) string {
	b := &strings.Builder{}
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// T renders the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}
