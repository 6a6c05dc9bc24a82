package analysis

// Default word lists for Korean workplace survey comments. They are plain
// data, injected into NewClassifier / NewStopwords by the caller, so they
// can be replaced without touching the pipeline logic.

// DefaultPositiveWords are substrings counted as positive sentiment hits.
var DefaultPositiveWords = []string{
	"좋", "감사", "만족", "도움", "기대", "수월", "명확", "충분", "존중", "성장",
	"기회", "소통", "유익", "편안", "효율", "체계", "배려", "동기", "열정",
}

// DefaultNegativeWords are substrings counted as negative sentiment hits.
var DefaultNegativeWords = []string{
	"힘들", "아쉽", "부족", "불만", "어렵", "불편", "모호", "시간", "부담", "형식",
	"피곤", "압박", "늦", "적", "복잡", "무리", "갈등", "지연", "비효율",
}

// DefaultStopwords are common Korean functional words, particles, and verb
// endings excluded from keyword frequency analysis.
var DefaultStopwords = []string{
	"하다", "있다", "없다", "되다", "안되다", "않다", "같다", "싶다", "보다", "주다", "받다", "알다", "모르다",
	"것", "수", "등", "이", "가", "을", "를", "은", "는", "에", "의", "도", "다", "로", "으로", "한", "해", "게", "고", "지",
	"네", "요", "서", "면", "나", "우리", "너", "그", "저", "이것", "저것", "그것", "여기", "저기", "거기",
	"때문", "관련", "대한", "대해", "위해", "통해", "따라", "의해", "가장", "매우", "너무", "많이", "조금", "정말",
	"습니다", "합니다", "있는", "없는", "하는", "되는", "해서", "하고", "하면", "해야", "할", "된", "될", "됨",
	"그리고", "하지만", "그런데", "따라서", "또한", "및", "또", "더", "좀", "자주", "가끔", "보통", "계속", "항상",
	"지금", "이제", "오늘", "내일", "어제", "이번", "저번", "다음", "지난", "경우", "정도", "부분", "점", "측면",
}
