package i18n

// Translator retrieves localized diagnostic templates by message code. The
// returned strings are fmt templates; the rule engine supplies the offending
// value and the acceptable alternatives as arguments.
type Translator interface {
	Message(code string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "must_be_one_of":
			return "次のいずれかでなければなりません: %s"
		case "no_alternatives":
			return "許容される値が定義されていません"
		case "got_mapping":
			return "%s の代わりにマッピングが与えられました"
		case "got_sequence":
			return "%s の代わりにシーケンスが与えられました"
		case "not_valid_value":
			return "値 '%v' は有効な %s ではありません"
		case "not_text":
			return "値 %v は有効なテキストではありません"
		case "not_number":
			return "値 %v は有効な数値ではありません"
		case "not_integer":
			return "値 %v は有効な整数ではありません"
		case "not_decimal":
			return "値 %v は有効な小数ではありません"
		case "not_boolean":
			return "値 %v は有効な真偽値ではありません"
		case "not_equal":
			return "値 '%v' は '%s' ではありません"
		case "choice_invalid":
			return "'%v' は許容される値ではありません: %s"
		case "expecting_text":
			return "テキストが必要です"
		case "invalid_regexp":
			return "%s は有効な正規表現ではありません"
		case "no_regexp_match":
			return "%s はパターンに一致しません"
		case "interval_format":
			return "'x (seconds|minutes|hours|days|weeks)' の形式で指定してください"
		case "file_missing":
			return "ファイル %s が存在しません"
		case "path_missing":
			return "パス %s が存在しません"
		case "invalid_url":
			return "値 %s は有効な URL ではありません"
		case "must_be_list":
			return "値はリストでなければなりません"
		case "must_be_dict":
			return "値は辞書でなければなりません"
		case "key_forbidden":
			return "キー '%s' はここでは使用できません"
		case "key_not_recognized":
			return "キー '%s' は認識されません"
		case "key_not_recognized_known":
			return "キー '%s' は認識されません。有効なキー: %s"
		case "key_required":
			return "キー '%s' は必須です"
		}
	default: // "en"
		switch code {
		case "must_be_one_of":
			return "must be one of %s"
		case "no_alternatives":
			return "no accepted values defined"
		case "got_mapping":
			return "got a mapping instead of %s"
		case "got_sequence":
			return "got a sequence instead of %s"
		case "not_valid_value":
			return "value '%v' is not valid %s"
		case "not_text":
			return "value %v is not valid text"
		case "not_number":
			return "value %v is not a valid number"
		case "not_integer":
			return "value %v is not a valid integer"
		case "not_decimal":
			return "value %v is not a valid decimal number"
		case "not_boolean":
			return "value %v is not a valid boolean"
		case "not_equal":
			return "value '%v' is not '%s'"
		case "choice_invalid":
			return "'%v' is not one of acceptable values: %s"
		case "expecting_text":
			return "value should be text"
		case "invalid_regexp":
			return "%s is not a valid regular expression"
		case "no_regexp_match":
			return "%s does not match regexp"
		case "interval_format":
			return "should be in format 'x (seconds|minutes|hours|days|weeks)'"
		case "file_missing":
			return "file %s does not exist"
		case "path_missing":
			return "path %s does not exist"
		case "invalid_url":
			return "value %s is not a valid url"
		case "must_be_list":
			return "value must be a list"
		case "must_be_dict":
			return "value must be a dictionary"
		case "key_forbidden":
			return "key '%s' is forbidden here"
		case "key_not_recognized":
			return "key '%s' is not recognized"
		case "key_not_recognized_known":
			return "key '%s' is not recognized, valid keys: %s"
		case "key_required":
			return "key '%s' required"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

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

// T fetches the template for the given code using the current Translator.
func T(code string) string { return currentTranslator.Message(code) }
