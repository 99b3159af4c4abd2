package render

// User-facing text. The page is Vietnamese; the quiz is in English.
const (
	msgEnglishPrompt    = "Nhập một từ tiếng Anh để tra."
	msgVietnamesePrompt = "Nhập từ tiếng Việt để tra."
	msgDefinitionPrompt = "Nhập từ để tra định nghĩa tiếng Việt."

	msgLoading   = "Đang tra từ"
	msgNotFound  = "Không tìm thấy định nghĩa cho"
	msgFailure   = "Lỗi khi tra từ"
	msgPhonetic  = "Phonetic:"
	msgExample   = "Ví dụ:"
	msgSynonyms  = "Từ đồng nghĩa:"
	msgTranslate = "Xem bản dịch tiếng Việt trên Google Translate"

	msgEnglishLabel    = "English:"
	msgDefinitionLabel = "Định nghĩa:"
	msgLocalNote       = "Lưu ý: Đây là demo local. Muốn tra rộng hơn, cần tích hợp API dịch."
	msgLocalMissBefore = "Không tìm thấy"
	msgLocalMissAfter  = "trong từ điển demo."

	msgQuizNote      = "(This is a demo question.)"
	msgQuizCorrect   = "Chính xác!"
	msgQuizIncorrect = "Chưa đúng. Đáp án đúng là"
)

// TranslateURL is the outbound translation service, English to Vietnamese.
const TranslateURL = "https://translate.google.com/?sl=en&tl=vi&text=%s&op=translate"
