package questionbank

// QuestionType is the exercise format of a question.
type QuestionType string

const (
	TypeBasicCloze           QuestionType = "BASIC_CLOZE"
	TypeMultiCloze           QuestionType = "MULTI_CLOZE"
	TypeVocabChoice          QuestionType = "VOCAB_CHOICE"
	TypeMultiSelect          QuestionType = "MULTI_SELECT"
	TypeConjugationTable     QuestionType = "CONJUGATION_TABLE"
	TypeDeclensionTable      QuestionType = "DECLENSION_TABLE"
	TypeTranslationPLEN      QuestionType = "TRANSLATION_PL_EN"
	TypeTranslationENPL      QuestionType = "TRANSLATION_EN_PL"
	TypeSentenceConstruction QuestionType = "SENTENCE_CONSTRUCTION"
	TypeWordOrder            QuestionType = "WORD_ORDER"
	TypeErrorCorrection      QuestionType = "ERROR_CORRECTION"
	TypeAspectPair           QuestionType = "ASPECT_PAIR"
	TypeCaseIdentification   QuestionType = "CASE_IDENTIFICATION"
	TypeSynonymChoice        QuestionType = "SYNONYM_CHOICE"
	TypeMatching             QuestionType = "MATCHING"
	TypeListening            QuestionType = "LISTENING"
	TypeDictation            QuestionType = "DICTATION"
	TypeFreeResponse         QuestionType = "FREE_RESPONSE"
)

// AllTypes lists every question type.
var AllTypes = []QuestionType{
	TypeBasicCloze, TypeMultiCloze, TypeVocabChoice, TypeMultiSelect,
	TypeConjugationTable, TypeDeclensionTable, TypeTranslationPLEN, TypeTranslationENPL,
	TypeSentenceConstruction, TypeWordOrder, TypeErrorCorrection, TypeAspectPair,
	TypeCaseIdentification, TypeSynonymChoice, TypeMatching, TypeListening,
	TypeDictation, TypeFreeResponse,
}

// MomentaryTypes are the types generated on demand to fill a shortfall,
// in the order the shortfall is spread across them.
var MomentaryTypes = []QuestionType{
	TypeBasicCloze, TypeMultiCloze, TypeVocabChoice, TypeMultiSelect,
}

// Valid reports whether t is a known type.
func (t QuestionType) Valid() bool {
	for _, x := range AllTypes {
		if x == t {
			return true
		}
	}
	return false
}

// ChoiceBased reports whether the learner picks from Options.
func (t QuestionType) ChoiceBased() bool {
	switch t {
	case TypeVocabChoice, TypeMultiSelect, TypeSynonymChoice, TypeCaseIdentification:
		return true
	}
	return false
}

// SingleAnswer reports whether exactly one option is correct, in which
// case the correct answer must appear among the options.
func (t QuestionType) SingleAnswer() bool {
	return t.ChoiceBased() && t != TypeMultiSelect
}
