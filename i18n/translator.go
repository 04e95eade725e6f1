package i18n

import "sync"

// Translator retrieves localized messages for diagnostic codes.
// data provides optional metadata to embed in the message (for example,
// "schema" or "member").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_a_schema":
			return "列挙定義は jens.Enumerable を埋め込んだインターフェースでなければなりません"
		case "unresolved_abstract_member":
			return "列挙定義に実装されない抽象メソッドが宣言されています"
		case "duplicate_item_name":
			return "列挙定義に重複した項目名があります"
		case "duplicate_accessor":
			return "複数の項目が同じアクセサメソッドを使っています"
		}
	default: // "en"
		switch code {
		case "not_a_schema":
			return "enumerable definition must be an interface embedding jens.Enumerable"
		case "unresolved_abstract_member":
			return "enumerable definition must not declare abstract methods"
		case "duplicate_item_name":
			return "enumerable definition contains duplicate item names"
		case "duplicate_accessor":
			return "enumerable definition binds several items to one accessor"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
