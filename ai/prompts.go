package ai

import (
	"facelens/models"
)

// DefaultStylePrompt is used when the caller sends no stylePrompt field.
const DefaultStylePrompt = "請專業分析這張人像照片的面部特徵與可能的性格特質"

// Prompt templates are plain data keyed by analysis type, then language.
// The full prompt is base + " " + stylePrompt + " " + end.
var basePrompts = map[string]map[string]string{
	models.AnalysisTypeNormal: {
		models.LanguageChinese:  "你是一位專業的面相分析師，擅長通過觀察人的面部特徵來分析性格特質和個人特色。",
		models.LanguageEnglish:  "You are a professional physiognomy analyst who excels at analyzing personality traits and personal characteristics through facial features.",
		models.LanguageJapanese: "あなたは顔の特徴を通じて性格特性や個人的特徴を分析することに長けた専門的な人相分析師です。",
	},
	models.AnalysisTypeFortune: {
		models.LanguageChinese:  "你是一位精通面相學的運勢分析師，擅長從面部特徵推測近期的運勢走向。",
		models.LanguageEnglish:  "You are a fortune analyst versed in physiognomy who excels at reading upcoming fortune trends from facial features.",
		models.LanguageJapanese: "あなたは人相学に精通し、顔の特徴から近い将来の運勢を読み取ることに長けた運勢分析師です。",
	},
}

var endPrompts = map[string]map[string]string{
	models.AnalysisTypeNormal: {
		models.LanguageChinese:  "請用不超過 150 字進行專業的面像分析，包括：1.面部特徵描述 2.可能的性格特質 3.個人魅力點 4.建議的發展方向。語氣要專業但親切，給予正面積極的分析。",
		models.LanguageEnglish:  "Please provide a professional physiognomy analysis in no more than 150 words, including: 1.Facial feature description 2.Possible personality traits 3.Personal charm points 4.Suggested development directions. Maintain a professional yet friendly tone with positive analysis.",
		models.LanguageJapanese: "150文字以内で専門的な人相分析を提供してください。含める内容：1.顔の特徴の説明 2.可能性のある性格特性 3.個人的な魅力ポイント 4.推奨される発展方向。専門的でありながら親しみやすい口調で、ポジティブな分析を行ってください。",
	},
	models.AnalysisTypeFortune: {
		models.LanguageChinese:  "請用不超過 150 字進行運勢預測，包括：1.整體運勢 2.事業與財運 3.感情運勢 4.開運建議。語氣要專業但親切，給予正面積極的預測。",
		models.LanguageEnglish:  "Please provide a fortune prediction in no more than 150 words, including: 1.Overall fortune 2.Career and wealth 3.Love and relationships 4.Suggestions for better luck. Maintain a professional yet friendly tone with positive predictions.",
		models.LanguageJapanese: "150文字以内で運勢予測を提供してください。含める内容：1.全体運 2.仕事運と金運 3.恋愛運 4.開運アドバイス。専門的でありながら親しみやすい口調で、ポジティブな予測を行ってください。",
	},
}

// BuildPrompt selects the template pair for (analysisType, language) and
// splices the caller's style prompt between them. Unknown languages fall
// back to Chinese, unknown analysis types to the normal pair.
func BuildPrompt(analysisType, language, stylePrompt string) string {
	base := lookupTemplate(basePrompts, analysisType, language)
	end := lookupTemplate(endPrompts, analysisType, language)
	return base + " " + stylePrompt + " " + end
}

func lookupTemplate(table map[string]map[string]string, analysisType, language string) string {
	byLanguage, ok := table[analysisType]
	if !ok {
		byLanguage = table[models.AnalysisTypeNormal]
	}
	if template, ok := byLanguage[language]; ok {
		return template
	}
	return byLanguage[models.LanguageChinese]
}
