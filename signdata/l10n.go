package signdata

import "golang.org/x/text/language"

// Protocol wire codes for message languages. The backend stores and
// replays these, the numeric values are part of the wire contract.
const (
	LangSimplifiedChinese uint8 = 0
	LangEnglish           uint8 = 1
)

// supportedLanguages is ordered by wire code, the first entry doubles as
// the fallback for unknown codes.
var supportedLanguages = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage resolves a BCP 47 language code to its protocol wire
// code. Unknown codes resolve to the default language.
func MatchLanguage(lang string) uint8 {
	_, idx := language.MatchStrings(languageMatcher, lang)
	return uint8(idx)
}

// allocationLine is language-neutral, amounts and symbols render
// identically everywhere.
const allocationLine = "• #%d: %s %s"

type messageText struct {
	commitmentTitle   string
	tokenLine         string
	allocationsHeader string
	depositLine       string
	networkLine       string
	ownerLine         string

	withdrawalTitle string
	toLine          string
	contractLine    string
	assetLine       string
	amountLine      string
}

var translations = [2]messageText{
	LangSimplifiedChinese: {
		commitmentTitle:   "存款承诺授权",
		tokenLine:         "代币：%s（ID：%d）",
		allocationsHeader: "分配明细：",
		depositLine:       "存款编号：%d",
		networkLine:       "网络：%s（%d）",
		ownerLine:         "所有者：%s",

		withdrawalTitle: "提款授权",
		toLine:          "收款地址：%s",
		contractLine:    "代币合约：%s",
		assetLine:       "资产：%s（适配器：%d，代币：%d）",
		amountLine:      "金额：%s %s",
	},
	LangEnglish: {
		commitmentTitle:   "Deposit Commitment Authorization",
		tokenLine:         "Token: %s (ID: %d)",
		allocationsHeader: "Allocations:",
		depositLine:       "Deposit ID: %d",
		networkLine:       "Network: %s (%d)",
		ownerLine:         "Owner: %s",

		withdrawalTitle: "Withdrawal Authorization",
		toLine:          "To: %s",
		contractLine:    "Token Contract: %s",
		assetLine:       "Asset: %s (Adapter: %d, Token: %d)",
		amountLine:      "Amount: %s %s",
	},
}
